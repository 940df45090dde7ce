// simple request logging

package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints request id, method, path, status and duration for each request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep the path, handlers may rewrite the URL
		c.Next()
		log.Printf("[http] %s %s %s %d %s",
			RequestIDFrom(c),
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start))
	}
}
