package leave

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *rbac.Enforcer, jwtSecret string, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	{
		leaves.POST("", middleware.Authorize(enforcer, "leaves", "create"), middleware.Idempotency(rdb), h.Submit)
		leaves.GET("", middleware.Authorize(enforcer, "leaves", "read"), h.MyRequests)
		leaves.GET("/balance", middleware.Authorize(enforcer, "leaves", "read"), h.Balance)
		leaves.DELETE("/:id", middleware.Authorize(enforcer, "leaves", "cancel"), h.Cancel)

		leaves.GET("/pending", middleware.Authorize(enforcer, "leaves", "review"), h.Pending)
		leaves.POST("/:id/approve", middleware.Authorize(enforcer, "leaves", "review"), h.Approve)
		leaves.POST("/:id/reject", middleware.Authorize(enforcer, "leaves", "review"), h.Reject)
		leaves.GET("/calendar", middleware.Authorize(enforcer, "leaves", "review"), h.Calendar)
	}
}
