package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/utils"
	"github.com/sirupsen/logrus"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
			"path":       path,
			"request_id": c.GetString(RequestIDKey),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		entry.Info("request")
	}
}

// DocumentLogger -> logs every generated file (tickets, spreadsheets, charts).
func DocumentLogger(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("id")
		if target == "" {
			target = c.Request.URL.RawQuery
		}
		utils.InfoLogger.Printf("Generating %s (%s)", kind, target)

		c.Next()

		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Generated %s (%s, %d bytes)", kind, target, c.Writer.Size())
		} else {
			utils.ErrorLogger.Printf("Failed to generate %s (%s): status %d", kind, target, c.Writer.Status())
		}
	}
}
