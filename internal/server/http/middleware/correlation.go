package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CorrelationHeader carries the request correlation identifier.
	CorrelationHeader = "X-Correlation-ID"
	// CorrelationIDContextKey is a gin context key for the correlation ID.
	CorrelationIDContextKey = "correlationID"
)

// CorrelationID propagates an inbound correlation identifier or generates a
// fresh one, echoing it on the response for client-side tracing.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(CorrelationHeader)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(CorrelationIDContextKey, cid)
		c.Header(CorrelationHeader, cid)
		c.Next()
	}
}

// CurrentCorrelationID returns the correlation ID stored by CorrelationID.
func CurrentCorrelationID(c *gin.Context) string {
	val, ok := c.Get(CorrelationIDContextKey)
	if !ok {
		return ""
	}
	cid, _ := val.(string)
	return cid
}
