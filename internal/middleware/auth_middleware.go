package middleware

import (
	"fmt"
	"net/http"
	"strings"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and exposes the employee identity
// to handlers via the gin context ("employee_id", "role", "email") and the
// request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			writeAuthError(c, autherrors.ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			writeAuthError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		if tokenType, _ := claims["type"].(string); tokenType == "refresh" {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set("employee_id", sub)
		c.Set("role", strings.ToUpper(role))
		c.Set("email", email)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), sub)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func writeAuthError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"detail": err.Error(),
		"type":   "authentication_error",
	})
}
