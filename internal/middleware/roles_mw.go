package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a middleware that admits the request only when the
// caller's resolved role set contains the required role. It expects
// JWTAuthMiddleware to have run first.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get(AuthRolesKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Roles not found in token, ensure JWT middleware runs first"})
			return
		}

		roles, ok := rolesVal.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid roles type in token"})
			return
		}

		for _, role := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}
