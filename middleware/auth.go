package middleware

import (
	"context"
	"net/http"
	"strings"

	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards the desk API. It validates the bearer token's
// signature and compares its hash against the active session recorded in the
// auth cache, so revoked tokens stop working immediately.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		client := utils.GetAuthCacheClient()
		storedHash, err := client.Get(context.Background(), utils.AuthCachePrefix+staffID).Result()
		if err != nil || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired or revoked",
				"code":  0,
			})
			return
		}

		c.Set("staffID", staffID)
		c.Next()
	}
}
