package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/notebook/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags each request with an id, reusing one supplied by a proxy.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestLogger returns a log entry carrying the request id and, once known,
// the current user id.
func RequestLogger(ctx *gin.Context, log *logrus.Logger) *logrus.Entry {
	fields := logrus.Fields{}

	if id := ctx.GetString(requestIDKey); id != "" {
		fields[requestIDKey] = id
	}

	if v, ok := ctx.Get(types.ContextUserKey); ok {
		if user, ok := v.(types.AuthenticatedUser); ok {
			fields["user_id"] = user.ID
		}
	}

	return log.WithFields(fields)
}

func AccessLog(log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		latency := time.Since(start)

		status := ctx.Writer.Status()

		entry := RequestLogger(ctx, log).WithFields(logrus.Fields{
			"status_code": status,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   ctx.ClientIP(),
			"method":      ctx.Request.Method,
			"path":        ctx.Request.URL.Path,
		})

		if errorMessage := ctx.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			entry.Error(errorMessage)
			return
		}

		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
