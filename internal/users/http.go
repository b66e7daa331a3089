package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPHandler exposes registration and login. There is no session
// layer; clients keep the returned user id and present it to rooms as
// player_id.
type HTTPHandler struct {
	service Service
	log     *zap.Logger
}

func NewHTTPHandler(service Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log.Named("users")}
}

func (h *HTTPHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/auth/register", h.handleRegister)
	router.POST("/api/auth/login", h.handleLogin)
	router.GET("/api/auth/user/:id", h.handleGetUser)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	Status   string `json:"status"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *HTTPHandler) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid request body"})
		return
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: err.Error()})
		case errors.Is(err, ErrUsernameTaken):
			c.JSON(http.StatusConflict, errorResponse{Status: "error", Message: err.Error()})
		default:
			h.log.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "register failed"})
		}
		return
	}

	h.log.Info("user registered", zap.String("user", user.ID))
	c.JSON(http.StatusOK, userResponse{Status: "success", UserID: user.ID, Username: user.Username})
}

func (h *HTTPHandler) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid request body"})
		return
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, errorResponse{Status: "error", Message: err.Error()})
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "login failed"})
		return
	}

	c.JSON(http.StatusOK, userResponse{Status: "success", UserID: user.ID, Username: user.Username})
}

func (h *HTTPHandler) handleGetUser(c *gin.Context) {
	user, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Status: "error", Message: "User not found"})
			return
		}
		h.log.Error("get user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, userResponse{Status: "success", UserID: user.ID, Username: user.Username})
}
