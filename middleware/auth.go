package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soulace/utils"
)

// JWTAuthMiddleware resolves the caller's identity from a Bearer token and
// stores userID and role in the gin context. All /api routes require it; the
// engine layer never reads identity from request payloads.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errorKind": "unauthorized",
				"message":   "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errorKind": "unauthorized",
				"message":   "Insufficient authorization",
			})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group on the role claim.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"errorKind": "forbidden",
				"message":   "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
