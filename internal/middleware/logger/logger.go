package logger

import (
	"time"

	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger 请求日志：5xx 记 Error，4xx 记 Warn，其余 Info
func ZapLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if uuid := c.GetString(constants.ContextUserUUID); uuid != "" {
			fields = append(fields, zap.String("user_uuid", uuid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case status >= 500:
			zlog.Error("http request", fields...)
		case status >= 400:
			zlog.Warn("http request", fields...)
		default:
			zlog.Info("http request", fields...)
		}
	}
}

// Recovery panic 时记录堆栈并返回 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zlog.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"))
		c.AbortWithStatus(500)
	})
}
