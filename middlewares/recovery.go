// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"log"
	"net/http"

	"VisitorIntake/models"

	"github.com/gin-gonic/gin"
)

// Recovery protects the server from crashes if a panic occurs during request handling.
// It responds with 500 and logs the panic with the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] request_id=%s %v", RequestIDFrom(c), r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
			}
		}()
		c.Next()
	}
}
