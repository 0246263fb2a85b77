package attendance

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *rbac.Enforcer, jwtSecret string, rdb *redis.Client) {
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByEmployee(rate.Limit(5), 10))
	{
		att.POST("/check-in", middleware.Authorize(enforcer, "attendance", "create"), middleware.Idempotency(rdb), h.CheckIn)
		att.POST("/check-out", middleware.Authorize(enforcer, "attendance", "create"), middleware.Idempotency(rdb), h.CheckOut)
		att.GET("/today", middleware.Authorize(enforcer, "attendance", "read"), h.Today)
		att.GET("/history", middleware.Authorize(enforcer, "attendance", "read"), h.History)
		att.GET("/stats/monthly", middleware.Authorize(enforcer, "attendance", "read"), h.MonthlyStats)
		att.GET("/overtime", middleware.Authorize(enforcer, "attendance", "read"), h.Overtime)

		att.POST("/sweep", middleware.Authorize(enforcer, "attendance", "sweep"), h.Sweep)
	}

	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(jwtSecret))
	{
		reports.GET("/daily", middleware.Authorize(enforcer, "reports", "read"), h.DailyReport)
		reports.GET("/late-arrivals", middleware.Authorize(enforcer, "reports", "read"), h.LateArrivals)
	}
}
