package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/core/auth"
	"bookstore-api/internal/service"
)

// AuthJWT guards a route group with bearer-token auth. On success the
// verified identity is stored on the context for handlers.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.Fail[any]("Missing or malformed token."))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.Fail[any]("Invalid or expired token."))
			return
		}
		c.Set("userId", claims.Subject)
		c.Set("userName", claims.UserName)
		c.Set("email", claims.Email)
		c.Next()
	}
}
