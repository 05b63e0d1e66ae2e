package routes

import (
	"net/http"
	"time"

	"hotelier/handlers"
	"hotelier/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.POST("/logout", middleware.JWTAuthMiddleware(), hb.Auth.Logout)
	}
}

// RegisterBookingRoutes sets up the endpoints for the reservation engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/available-rooms", hb.Booking.FindAvailableRooms)
		api.GET("/:id", hb.Booking.GetBooking)
		api.GET("/:id/checkout-summary", hb.Booking.GetCheckoutSummary)
		api.PATCH("/:id/status", hb.Booking.UpdateStatus)
		api.POST("/:id/check-in", hb.Booking.CheckIn)
		api.POST("/:id/check-out", hb.Booking.CheckOut)
		api.POST("/:id/cancel", hb.Booking.Cancel)
	}
}

// RegisterRoomRoutes registers room catalog endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Room.CreateRoom)
		api.GET("", hb.Room.ListRooms)
		api.GET("/:id", hb.Room.GetRoom)
		api.PUT("/:id", hb.Room.UpdateRoom)
		api.PATCH("/:id/active", hb.Room.SetRoomActive)
	}
}

// RegisterRoomServiceRoutes registers room service ticket endpoints.
func RegisterRoomServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/room-service")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RoomService.CreateTicket)
		api.GET("", hb.RoomService.ListTickets)
		api.GET("/:id", hb.RoomService.GetTicket)
		api.PATCH("/:id/status", hb.RoomService.UpdateTicketStatus)
	}
}

// RegisterDashboardRoutes registers front-desk reporting endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/check-ins", hb.Dashboard.TodayCheckIns)
		api.GET("/check-outs", hb.Dashboard.TodayCheckOuts)
		api.GET("/guests", hb.Dashboard.CurrentGuests)
		api.GET("/occupancy", hb.Dashboard.OccupancyRate)
		api.GET("/occupancy/weekly", hb.Dashboard.WeeklyOccupancy)
		api.GET("/bookings", hb.Dashboard.BookingCounts)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hotelier"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterRoomServiceRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
