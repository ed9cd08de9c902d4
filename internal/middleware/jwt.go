package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grace-celebration/backend/internal/auth"
	"github.com/grace-celebration/backend/pkg/response"
)

const (
	// ContextSessionID is the key for the admin session ID in gin context.
	ContextSessionID = "session_id"
)

// JWT returns a middleware that validates the admin session token.
func JWT(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextSessionID, claims.ID)
		c.Next()
	}
}
