package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/logger"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/rs/zerolog"
)

const requestLogMessage = "HTTP request"

// RequestLogger writes one structured line per request and, when a logging
// service is configured, persists the same record for later querying.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := requestEntry(c, start)

		log := logger.Logger()
		event := log.WithLevel(statusLevel(entry.StatusCode)).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP)
		if route := c.FullPath(); route != "" && route != entry.Path {
			event = event.Str("route", route)
		}
		if entry.CustomerID != "" {
			event = event.Str("customer_id", entry.CustomerID)
		}
		if entry.Error != "" {
			event = event.Str("error", entry.Error)
		}
		event.Msg(requestLogMessage)

		if loggingService != nil {
			persistLog(loggingService, entry)
		}
	}
}

func requestEntry(c *gin.Context, start time.Time) *model.LogEntry {
	status := c.Writer.Status()
	entry := &model.LogEntry{
		Timestamp:  start.UTC(),
		Level:      getLogLevel(status),
		Message:    requestLogMessage,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		StatusCode: status,
		Duration:   time.Since(start).Milliseconds(),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		CustomerID: GetCustomerID(c),
	}
	if err := c.Errors.Last(); err != nil {
		entry.Error = err.Error()
	}
	if sessionID := c.Param("id"); sessionID != "" {
		entry.WithField("session_id", sessionID)
	}
	if size := c.Writer.Size(); size > 0 {
		entry.WithField("response_bytes", size)
	}
	return entry
}

// persistLog hands entry to the async writer, or stores it from a
// short-lived goroutine when no writer is running. A full writer drops it.
func persistLog(loggingService service.LoggingService, entry *model.LogEntry) {
	if writer := GetAsyncLogger(); writer != nil {
		writer.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := loggingService.CreateLog(ctx, entry); err != nil {
			log := logger.Logger()
			log.Debug().Err(err).Str("request_id", entry.RequestID).Msg("Dropped log entry")
		}
	}()
}

func statusLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// getLogLevel is the stored level name for a response status.
func getLogLevel(status int) string {
	return statusLevel(status).String()
}
