package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelier/models"
	"hotelier/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the reservation engine over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// bookingErrorStatus maps the reservation error taxonomy to HTTP codes.
func bookingErrorStatus(err error) int {
	var ve *booking.ValidationError
	var nf *booking.NotFoundError
	var ce *booking.ConflictError
	var se *booking.StateError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ce):
		return http.StatusConflict
	case errors.As(err, &se):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) fail(c *gin.Context, err error) {
	status := bookingErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		FirstName        string `json:"firstName" binding:"required"`
		LastName         string `json:"lastName" binding:"required"`
		Pronouns         string `json:"pronouns"`
		CheckInDate      string `json:"checkInDate" binding:"required"`
		CheckOutDate     string `json:"checkOutDate" binding:"required"`
		AdultCapacity    int    `json:"adultCapacity" binding:"required,min=1"`
		ChildrenCapacity int    `json:"childrenCapacity" binding:"min=0"`
		RoomID           string `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkInDate, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOutDate, expected YYYY-MM-DD"})
		return
	}

	created, err := h.Svc.CreateBooking(models.BookingRequest{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Pronouns:         input.Pronouns,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		AdultCapacity:    input.AdultCapacity,
		ChildrenCapacity: input.ChildrenCapacity,
		RoomID:           input.RoomID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings with pagination, sorting, search and
// status filter.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	q := models.BookingQuery{
		Page:     page,
		Size:     size,
		SortBy:   c.DefaultQuery("sortBy", "created_at"),
		SortDesc: c.DefaultQuery("sortDirection", "desc") == "desc",
		Search:   c.Query("search"),
		Status:   models.BookingStatus(c.Query("status")),
	}

	bookings, total, err := h.Svc.ListBookings(q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"content":       bookings,
		"totalElements": total,
		"page":          page,
		"size":          size,
	})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Svc.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckIn handles POST /api/bookings/:id/check-in.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	b, err := h.Svc.CheckIn(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckOut handles POST /api/bookings/:id/check-out. Billing is finalized and
// the grand total persisted on the booking.
func (h *BookingHandler) CheckOut(c *gin.Context) {
	b, err := h.Svc.CheckOut(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.Svc.CancelBooking(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetCheckoutSummary handles GET /api/bookings/:id/checkout-summary
// (read-only; does not finalize).
func (h *BookingHandler) GetCheckoutSummary(c *gin.Context) {
	summary, err := h.Svc.GetCheckoutSummary(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// FindAvailableRooms handles GET /api/bookings/available-rooms.
func (h *BookingHandler) FindAvailableRooms(c *gin.Context) {
	checkInStr := c.Query("checkInDate")
	checkOutStr := c.Query("checkOutDate")
	if checkInStr == "" || checkOutStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkInDate and checkOutDate are required"})
		return
	}

	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkInDate, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOutDate, expected YYYY-MM-DD"})
		return
	}

	adults, _ := strconv.Atoi(c.DefaultQuery("adultCapacity", "1"))
	children, _ := strconv.Atoi(c.DefaultQuery("childrenCapacity", "0"))

	rooms, err := h.Svc.FindAvailableRooms(checkIn, checkOut, adults, children)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
