package middleware

import (
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware attaches a request id to the context and response.
// An inbound X-Request-ID is honored so callers can correlate retries.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set(types.HeaderRequestID, requestID)

	c.Next()
}
