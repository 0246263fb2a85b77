package auth

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		// Login is the brute-force target, keep its limiter tight.
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(rate.Limit(1), 5), h.Refresh)
		auth.POST("/change-password", middleware.AuthMiddleware(jwtSecret), h.ChangePassword)
		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), h.Me)
	}
}
