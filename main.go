package main

import (
	"log"

	api "github.com/rayhanoval/ecommerce-sabi/cmd/api"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/domain"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/repository"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/usecase"
	"github.com/rayhanoval/ecommerce-sabi/pkg/config"
	"github.com/rayhanoval/ecommerce-sabi/pkg/database"
	"github.com/rayhanoval/ecommerce-sabi/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.DeviceRegistration{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories and services (dependency injection)
	deviceRepo := repository.NewDeviceRepository(db)
	fcmClient := fcm.NewClient()
	pushUsecase := usecase.NewPushUsecase(deviceRepo, fcmClient, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(pushUsecase, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
