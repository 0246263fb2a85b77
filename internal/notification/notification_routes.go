package notification

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *rbac.Enforcer, jwtSecret string) {
	notifs := r.Group("/notifications")
	notifs.Use(middleware.AuthMiddleware(jwtSecret))
	{
		notifs.GET("", middleware.Authorize(enforcer, "notifications", "read"), h.List)
		notifs.GET("/unread-count", middleware.Authorize(enforcer, "notifications", "read"), h.UnreadCount)
		notifs.POST("/:id/read", middleware.Authorize(enforcer, "notifications", "read"), h.MarkRead)
	}
}
