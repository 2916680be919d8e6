package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smart-daily-planner/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or generates a request id and puts it in the
// request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
