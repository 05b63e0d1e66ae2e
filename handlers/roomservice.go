package handlers

import (
	"errors"
	"net/http"

	"hotelier/models"
	"hotelier/services/roomservice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomServiceHandler exposes room service ticket operations over HTTP.
type RoomServiceHandler struct {
	Svc    roomservice.RoomServiceService
	Logger *zap.Logger
}

// NewRoomServiceHandler creates a RoomServiceHandler.
func NewRoomServiceHandler(svc roomservice.RoomServiceService, logger *zap.Logger) *RoomServiceHandler {
	return &RoomServiceHandler{Svc: svc, Logger: logger}
}

func (h *RoomServiceHandler) fail(c *gin.Context, err error) {
	var nf *roomservice.NotFoundError
	var st *roomservice.StateError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &st):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("room service request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateTicket handles POST /api/room-service.
func (h *RoomServiceHandler) CreateTicket(c *gin.Context) {
	var req models.RoomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ticket, err := h.Svc.CreateTicket(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetTicket handles GET /api/room-service/:id.
func (h *RoomServiceHandler) GetTicket(c *gin.Context) {
	ticket, err := h.Svc.GetTicket(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// ListTickets handles GET /api/room-service. Filters by roomNumber or
// status query params; with neither it returns all open tickets.
func (h *RoomServiceHandler) ListTickets(c *gin.Context) {
	var (
		tickets []models.RoomServiceTicket
		err     error
	)
	switch {
	case c.Query("roomNumber") != "":
		tickets, err = h.Svc.ListByRoom(c.Query("roomNumber"))
	case c.Query("status") != "":
		tickets, err = h.Svc.ListByStatus(models.ServiceStatus(c.Query("status")))
	default:
		tickets, err = h.Svc.ListActive()
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// UpdateTicketStatus handles PATCH /api/room-service/:id/status.
func (h *RoomServiceHandler) UpdateTicketStatus(c *gin.Context) {
	var input struct {
		Status models.ServiceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ticket, err := h.Svc.UpdateTicketStatus(c.Param("id"), input.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
