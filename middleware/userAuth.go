package middleware

import (
	"strings"

	"neatspin/utils"

	"github.com/gin-gonic/gin"
)

// OptionalUserAuthMiddleware extracts the authenticated user's email from a
// Bearer token when one is present and valid. Requests without a token pass
// through untouched; the wizard simply starts with an empty contact email.
func OptionalUserAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err == nil && email != "" {
			c.Set("userEmail", email)
		}
		c.Next()
	}
}
