package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором клиенту возвращается идентификатор запроса.
const RequestIDHeader = "X-Request-Id"

// RequestLogger присваивает запросу id и логирует его: метод, путь, статус, длительность, client IP.
// Если клиент прислал свой X-Request-Id, он сохраняется (удобно трейсить запросы фронта).
func RequestLogger(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery
	clientIP := c.ClientIP()
	method := c.Request.Method

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Writer.Header().Set(RequestIDHeader, requestID)

	c.Next()

	latency := time.Since(start)
	status := c.Writer.Status()
	if raw != "" {
		path = path + "?" + raw
	}
	slog.Info("request",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", status,
		"ip", clientIP,
		"latency_ms", latency.Milliseconds(),
	)
}
