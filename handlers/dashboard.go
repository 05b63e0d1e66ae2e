package handlers

import (
	"net/http"
	"time"

	"hotelier/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes front-desk reporting endpoints.
type DashboardHandler struct {
	Svc    dashboard.DashboardService
	Logger *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboard.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	h.Logger.Error("dashboard request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// TodayCheckIns handles GET /api/dashboard/check-ins.
func (h *DashboardHandler) TodayCheckIns(c *gin.Context) {
	stays, err := h.Svc.TodayCheckIns()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// TodayCheckOuts handles GET /api/dashboard/check-outs.
func (h *DashboardHandler) TodayCheckOuts(c *gin.Context) {
	stays, err := h.Svc.TodayCheckOuts()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// CurrentGuests handles GET /api/dashboard/guests.
func (h *DashboardHandler) CurrentGuests(c *gin.Context) {
	stays, err := h.Svc.CurrentGuests()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// OccupancyRate handles GET /api/dashboard/occupancy. Accepts an optional
// date query param (YYYY-MM-DD), defaulting to today.
func (h *DashboardHandler) OccupancyRate(c *gin.Context) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	rate, err := h.Svc.OccupancyRate(date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// WeeklyOccupancy handles GET /api/dashboard/occupancy/weekly.
func (h *DashboardHandler) WeeklyOccupancy(c *gin.Context) {
	points, err := h.Svc.WeeklyOccupancy()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// BookingCounts handles GET /api/dashboard/bookings.
func (h *DashboardHandler) BookingCounts(c *gin.Context) {
	counts, err := h.Svc.BookingCounts()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
