package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aditya130805/MonopolyDeal/internal/directory"
	"github.com/Aditya130805/MonopolyDeal/internal/gateway"
	"github.com/Aditya130805/MonopolyDeal/internal/room"
	"github.com/Aditya130805/MonopolyDeal/internal/users"
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if os.Getenv("LOG_DEV") != "" {
		cfg = zap.NewDevelopmentConfig()
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	return cfg.Build()
}

func main() {
	log, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	userService, usersMode, err := users.NewServiceFromEnv()
	if err != nil {
		log.Fatal("users service init failed", zap.Error(err))
	}
	defer userService.Close()

	directoryService, directoryMode, err := directory.NewServiceFromEnv()
	if err != nil {
		log.Fatal("directory service init failed", zap.Error(err))
	}
	defer directoryService.Close()

	manager := room.NewManager(directoryService, userService, log)
	defer manager.StopAll()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	directory.NewHTTPHandler(directoryService, log).RegisterRoutes(router)
	users.NewHTTPHandler(userService, log).RegisterRoutes(router)
	gateway.New(manager, log).RegisterRoutes(router)
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Info("server listening",
			zap.String("addr", addr),
			zap.String("users_backend", usersMode),
			zap.String("directory_backend", directoryMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}
