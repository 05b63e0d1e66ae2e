package handlers

import (
	"errors"
	"net/http"

	"hotelier/models"
	"hotelier/services/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes room catalog management over HTTP.
type RoomHandler struct {
	Svc    room.RoomService
	Logger *zap.Logger
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

func (h *RoomHandler) fail(c *gin.Context, err error) {
	var nf *room.NotFoundError
	var dup *room.DuplicateRoomNumberError
	var ve *room.ValidationError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("room request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type roomInput struct {
	RoomNumber       string          `json:"roomNumber" binding:"required"`
	RoomType         models.RoomType `json:"roomType" binding:"required"`
	AdultCapacity    int             `json:"adultCapacity" binding:"required,min=1"`
	ChildrenCapacity int             `json:"childrenCapacity" binding:"min=0"`
	Price            float64         `json:"price" binding:"min=0"`
	Description      string          `json:"description"`
	Amenities        []string        `json:"amenities"`
	IsActive         *bool           `json:"isActive"`
}

func (in roomInput) toModel() models.Room {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return models.Room{
		RoomNumber:       in.RoomNumber,
		RoomType:         in.RoomType,
		AdultCapacity:    in.AdultCapacity,
		ChildrenCapacity: in.ChildrenCapacity,
		Price:            in.Price,
		Description:      in.Description,
		Amenities:        in.Amenities,
		IsActive:         active,
	}
}

// CreateRoom handles POST /api/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input roomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateRoom(input.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	r, err := h.Svc.GetRoom(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Svc.GetAllRooms()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UpdateRoom handles PUT /api/rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var input roomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m := input.toModel()
	m.ID = c.Param("id")
	updated, err := h.Svc.UpdateRoom(m)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetRoomActive handles PATCH /api/rooms/:id/active.
func (h *RoomHandler) SetRoomActive(c *gin.Context) {
	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.SetRoomActive(c.Param("id"), *input.IsActive); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
