package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts JWT bearer tokens for API clients (the BI export
// scripts use these instead of browser sessions).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		auth = strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyUserId, customClaim.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
