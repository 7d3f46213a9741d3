package delivery

import (
	"log"
	"net/http"

	"github.com/rayhanoval/ecommerce-sabi/internal/notification/dto"
	"github.com/rayhanoval/ecommerce-sabi/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

// PushHandler exposes the push pipeline and device registration over HTTP
type PushHandler struct {
	pushUsecase usecase.PushUsecase
}

// NewPushHandler creates a new PushHandler
func NewPushHandler(pushUsecase usecase.PushUsecase) *PushHandler {
	return &PushHandler{
		pushUsecase: pushUsecase,
	}
}

// Send is the notification trigger endpoint. It accepts either a direct
// payload or an order-change webhook and answers with one outcome per
// device. Every pre-fan-out failure collapses to a 400 with the error
// message; partial delivery failures are reported in-band with status 200.
func (h *PushHandler) Send(c *gin.Context) {
	var req dto.PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	result, err := h.pushUsecase.SendPush(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[API] Push request failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if result.NoDevices {
		c.JSON(http.StatusOK, gin.H{"message": "No devices found for user"})
		return
	}

	c.JSON(http.StatusOK, result.Outcomes)
}

// RegisterDevice stores a device token for a user
func (h *PushHandler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pushUsecase.RegisterDevice(req.UserID, req.Token, req.DeviceInfo); err != nil {
		log.Printf("[API] Failed to register device: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device registered"})
}

// UnregisterDevice removes a device token
func (h *PushHandler) UnregisterDevice(c *gin.Context) {
	token := c.Param("token")

	if err := h.pushUsecase.UnregisterDevice(token); err != nil {
		log.Printf("[API] Failed to unregister device: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unregister device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device unregistered"})
}
