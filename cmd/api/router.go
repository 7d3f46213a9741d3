package api

import (
	"net/http"

	"github.com/rayhanoval/ecommerce-sabi/internal/notification/delivery"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, pushUsecase usecase.PushUsecase) {
	pushHandler := delivery.NewPushHandler(pushUsecase)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Notification trigger. Webhook producers POST, but any method is
		// accepted; preflight is handled by the CORS middleware.
		api.Any("/notifications/send", pushHandler.Send)

		// Device registration routes
		devices := api.Group("/devices")
		{
			devices.POST("", pushHandler.RegisterDevice)
			devices.DELETE("/:token", pushHandler.UnregisterDevice)
		}
	}
}
