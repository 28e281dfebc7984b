package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the opaque session token issued at login.
// Requests without a token pass through; route handlers decide whether a
// user id in context is required.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		value, exists, err := config.GetRedisValue("Token:" + token)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		userId, err := strconv.Atoi(value)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
		ctx = context.WithValue(ctx, utils.ContextKeyUserId, userId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
