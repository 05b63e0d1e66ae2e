// File: hotelier/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelier/config"
	"hotelier/database"
	bookingRepoPkg "hotelier/database/repository/booking"
	roomRepoPkg "hotelier/database/repository/room"
	roomServiceRepoPkg "hotelier/database/repository/roomservice"
	staffRepoPkg "hotelier/database/repository/staff"
	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/routes"
	"hotelier/services/auth"
	"hotelier/services/booking"
	"hotelier/services/dashboard"
	"hotelier/services/room"
	"hotelier/services/roomservice"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	roomServiceRepo := roomServiceRepoPkg.NewMongoRoomServiceRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	bookingService := booking.NewBookingService(bookingRepo, roomRepo, roomServiceRepo)
	roomService := &room.DefaultRoomService{Repo: roomRepo}
	roomServiceService := &roomservice.DefaultRoomServiceService{Repo: roomServiceRepo}
	dashboardService := dashboard.NewDashboardService(bookingRepo, roomRepo)
	authService := &auth.DefaultAuthService{Repo: staffRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Room:        handlers.NewRoomHandler(roomService, logger),
		RoomService: handlers.NewRoomServiceHandler(roomServiceService, logger),
		Dashboard:   handlers.NewDashboardHandler(dashboardService, logger),
		Auth:        handlers.NewAuthHandler(authService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
