package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/config"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/database"
	bookingRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/booking"
	courtRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/court"
	venueRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/venue"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/handlers"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/middleware"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/routes"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/services/availability"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/services/pricing"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

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
	venues := venueRepo.NewMongoVenueRepo()
	courts := courtRepo.NewMongoCourtRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	pricingService := &pricing.DefaultPricingService{
		VenueRepo: venues,
	}
	engine := &availability.DefaultAvailabilityEngine{
		VenueRepo:   venues,
		CourtRepo:   courts,
		BookingRepo: bookings,
		Pricing:     pricingService,
	}
	sessionService := availability.NewSessionService(engine)

	availabilityHandler := handlers.NewAvailabilityHandler(sessionService, engine, logger)

	routes.RegisterRoutes(router, availabilityHandler)

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
