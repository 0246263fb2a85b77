package qrcode

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *rbac.Enforcer, jwtSecret string) {
	codes := r.Group("/qr-codes")
	codes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		codes.GET("", middleware.Authorize(enforcer, "qrcodes", "read"), h.ListActive)
		codes.POST("", middleware.Authorize(enforcer, "qrcodes", "manage"), h.Generate)
		codes.POST("/validate", middleware.Authorize(enforcer, "attendance", "create"), h.Validate)
		codes.POST("/:id/deactivate", middleware.Authorize(enforcer, "qrcodes", "manage"), h.Deactivate)
	}
}
