package middleware

import (
	"net/http"
	"strings"

	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the bearer token and stores the actor identity in
// the request context for the controllers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// ActorID reads the authenticated user id set by RequireAuth.
func ActorID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// ActorRole reads the authenticated role set by RequireAuth.
func ActorRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok2 := v.(string); ok2 {
			return role
		}
	}
	return ""
}
