package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// RequestLogger writes one line per request once the handler chain is done.
// Probe endpoints log at debug so they do not drown real traffic.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "http")
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		route := c.FullPath()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", time.Since(began).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if route == "" {
			fields = append(fields, "path", c.Request.URL.Path)
		}
		if t, ok := ctxutil.TraceFrom(ctx); ok {
			fields = append(fields, "request_id", t.RequestID, "trace_id", t.TraceID)
		}
		if uid := ctxutil.UserID(ctx); uid != uuid.Nil {
			fields = append(fields, "user_id", uid.String())
		}
		if last := c.Errors.Last(); last != nil {
			if code := domain.CodeOf(last.Err); code != "" {
				fields = append(fields, "error_code", string(code))
			}
			if status >= http.StatusInternalServerError {
				fields = append(fields, "error", last.Error())
			}
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request rejected", fields...)
		case unobservedRoutes[c.Request.URL.Path]:
			log.Debug("probe", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
