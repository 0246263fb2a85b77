package middleware

import (
	"net/http"

	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the caller's role via the casbin enforcer.
func Authorize(enforcer *rbac.Enforcer, obj, act string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		allowed, err := enforcer.Allowed(role, obj, act)
		if err != nil || !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "You do not have permission to access this resource",
				"type":   "forbidden",
			})
			return
		}
		c.Next()
	}
}
