package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Aditya130805/MonopolyDeal/internal/room"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 65536
	sendBuffer     = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict in production
	},
}

// Gateway upgrades websocket requests on /ws/game/:room_id and binds
// each connection to its room actor.
type Gateway struct {
	manager *room.Manager
	log     *zap.Logger
}

func New(manager *room.Manager, log *zap.Logger) *Gateway {
	return &Gateway{manager: manager, log: log.Named("gateway")}
}

func (g *Gateway) RegisterRoutes(router gin.IRouter) {
	router.GET("/ws/game/:room_id", g.handleGameSocket)
}

func (g *Gateway) handleGameSocket(ctx *gin.Context) {
	code := ctx.Param("room_id")
	rm, err := g.manager.Attach(code)
	if err != nil {
		if err == room.ErrRoomNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
			return
		}
		g.log.Error("room attach failed", zap.String("room", code), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to join room"})
		return
	}

	ws, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		g.log.Warn("upgrade failed", zap.String("room", code), zap.Error(err))
		return
	}

	c := &Connection{
		id:   uuid.NewString(),
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		room: rm,
		log:  g.log.With(zap.String("room", code)),
	}
	g.log.Info("client connected", zap.String("conn", c.id), zap.String("room", code))

	go c.writePump()
	go c.readPump()
}

// Connection is one websocket client. It implements room.Conn; all
// game logic happens in the room actor, the pumps only move frames.
type Connection struct {
	id   string
	ws   *websocket.Conn
	send chan []byte
	room *room.Room
	log  *zap.Logger

	mu     sync.Mutex
	closed bool
}

func (c *Connection) ID() string { return c.id }

// Send queues a frame without blocking the room actor. A client that
// cannot drain its buffer loses frames rather than stalling the room.
func (c *Connection) Send(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn("send buffer full, dropping frame", zap.String("conn", c.id))
	}
}

func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Connection) readPump() {
	defer func() {
		c.room.Disconnect(c)
		c.Close()
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Warn("read error", zap.String("conn", c.id), zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := c.room.Submit(c, message); err != nil {
			c.log.Warn("message rejected", zap.String("conn", c.id), zap.Error(err))
			if err == room.ErrRoomClosed {
				return
			}
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
