package api

import (
	"net/http"

	"github.com/rayhanoval/ecommerce-sabi/internal/notification/usecase"
	"github.com/rayhanoval/ecommerce-sabi/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pushUsecase usecase.PushUsecase
	config      *config.Config
}

func NewHandler(pushUsecase usecase.PushUsecase, cfg *config.Config) *Handler {
	return &Handler{
		pushUsecase: pushUsecase,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(CORSMiddleware())

	// Setup routes
	SetupRoutes(r, h.pushUsecase)

	return r.Run(addr)
}

// CORSMiddleware emits the permissive headers the mobile and web clients
// already rely on. Preflight requests are answered directly with "ok".
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "ok")
			c.Abort()
			return
		}

		c.Next()
	}
}
