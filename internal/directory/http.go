package directory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPHandler exposes the room directory REST surface.
type HTTPHandler struct {
	service Service
	log     *zap.Logger
}

func NewHTTPHandler(service Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log.Named("directory")}
}

func (h *HTTPHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/room/create", h.handleCreateRoom)
	router.GET("/api/room/:room_id", h.handleGetRoom)
	router.GET("/api/rooms", h.handleListRooms)
}

type roomResponse struct {
	Status      string         `json:"status"`
	RoomID      string         `json:"room_id"`
	PlayerCount int            `json:"player_count"`
	MaxPlayers  int            `json:"max_players"`
	HasStarted  bool           `json:"has_started"`
	Players     []RosterPlayer `json:"players"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *HTTPHandler) handleCreateRoom(c *gin.Context) {
	room, err := h.service.Create()
	if err != nil {
		h.log.Error("create room failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "failed to create room"})
		return
	}
	h.log.Info("room created", zap.String("room", room.Code))
	c.JSON(http.StatusOK, roomResponse{
		Status:      "success",
		RoomID:      room.Code,
		PlayerCount: room.PlayerCount,
		MaxPlayers:  room.MaxPlayers,
		Players:     room.Players,
	})
}

func (h *HTTPHandler) handleGetRoom(c *gin.Context) {
	code := c.Param("room_id")
	room, err := h.service.Get(code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Status: "error", Message: "Room not found"})
			return
		}
		h.log.Error("get room failed", zap.String("room", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "failed to load room"})
		return
	}
	if room.PlayerCount >= room.MaxPlayers {
		c.JSON(http.StatusForbidden, errorResponse{Status: "error", Message: "Room is full"})
		return
	}
	c.JSON(http.StatusOK, roomResponse{
		Status:      "success",
		RoomID:      room.Code,
		PlayerCount: room.PlayerCount,
		MaxPlayers:  room.MaxPlayers,
		HasStarted:  room.HasStarted,
		Players:     room.Players,
	})
}

type listRoomsResponse struct {
	Status string `json:"status"`
	Rooms  []Room `json:"rooms"`
}

func (h *HTTPHandler) handleListRooms(c *gin.Context) {
	rooms, err := h.service.List()
	if err != nil {
		h.log.Error("list rooms failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Status: "error", Message: "failed to list rooms"})
		return
	}
	if rooms == nil {
		rooms = []Room{}
	}
	c.JSON(http.StatusOK, listRoomsResponse{Status: "success", Rooms: rooms})
}
