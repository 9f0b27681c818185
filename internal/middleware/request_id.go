package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey = "requestID"

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-Id"

// RequestID attaches a unique ID to every request. An ID supplied by an
// upstream proxy via X-Request-Id is kept; otherwise a new UUID is minted.
// The ID is echoed back on the response so clients can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set(RequestIDKey, requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)

		ctx.Next()
	}
}

// GetRequestID returns the request ID stored on the context, or an empty
// string when the middleware did not run.
func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(RequestIDKey)
}
