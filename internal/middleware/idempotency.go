package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards POST check-in/check-out against double submission from
// flaky mobile clients. A short-lived Redis lock rejects a concurrent
// duplicate while the first request is still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		employeeID := c.GetString("employee_id")
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), employeeID, idempKey)

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if err != nil {
			// Redis being down must not block the request path.
			c.Next()
			return
		}
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"detail": "A request with this idempotency key is already being processed",
				"type":   "business_logic_error",
			})
			return
		}

		c.Next()
	}
}
