package middleware

import (
	"time"

	"chatproxy-go/internal/logging"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs HTTP requests. API keys are deliberately excluded
// from the log fields.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		providerVal, _ := c.Get("provider")
		modelVal, _ := c.Get("model")
		extras := log.Fields{
			"status":     status,
			"latency_ms": logging.DurationMS(latency),
			"user_agent": c.Request.UserAgent(),
			"method":     method,
			"path":       path,
			"provider":   providerVal,
			"model":      modelVal,
			"bytes_out":  c.Writer.Size(),
		}
		logging.WithReq(c, extras).Info("http_request")
	}
}
