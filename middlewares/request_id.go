// tags every request with an id so access logs and diagnostics can be correlated.

package middlewares

import (
	"VisitorIntake/global"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxInboundIDLen caps ids accepted from upstream proxies.
const maxInboundIDLen = 64

// RequestID reuses a sane inbound X-Request-ID or mints a UUID, stores it on
// the gin context and echoes it in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(global.HeaderRequestID)
		if id == "" || len(id) > maxInboundIDLen {
			id = uuid.NewString()
		}
		c.Set(global.CtxRequestIDKey, id)
		c.Header(global.HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "" outside that middleware.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(global.CtxRequestIDKey)
}
