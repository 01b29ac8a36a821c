package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"bookstore-api/internal/service"
)

// ConcurrencyLimit caps the number of in-flight requests to protect
// the database downstream.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, service.Fail[any]("Server busy."))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
