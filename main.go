// File: glowdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	bookingRepoPkg "glowdesk/database/repository/bookings"
	catalogRepoPkg "glowdesk/database/repository/catalog"
	salonRepoPkg "glowdesk/database/repository/salon"
	staffRepoPkg "glowdesk/database/repository/staff"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	"glowdesk/services/booking"
	"glowdesk/services/catalog"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
		storageSvc = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// background worker and task queue.
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()
	cron.InitTaskWorker(staffRepo, bookingRepo)

	// services.
	progressTTL := time.Duration(config.AppConfig.ProgressTTLMinutes) * time.Minute
	progressStore := booking.NewRedisProgressStore(utils.GetProgressCacheClient(), progressTTL, logger)

	flowService := booking.NewDefaultBookingFlowService(
		salonRepo,
		catalogRepo,
		staffRepo,
		bookingRepo,
		progressStore,
		time.Duration(config.AppConfig.AdvanceDelayMillis)*time.Millisecond,
		logger,
	)

	catalogService := &catalog.DefaultCatalogService{
		Repo:      catalogRepo,
		StaffRepo: staffRepo,
		Tasks:     taskClient,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SalonRepo: salonRepo,
		Widget:    handlers.NewWidgetHandler(flowService, progressTTL, logger),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Staff:     handlers.NewStaffHandler(staffRepo),
		Salon:     handlers.NewSalonHandler(salonRepo),
		Bookings:  handlers.NewBookingAdminHandler(bookingRepo),
		Storage:   handlers.NewStorageHandler(storageSvc),
	}

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
