package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// Logger 访问日志中间件
// 为每个请求生成 trace_id 并注入 request context，日志按字段携带
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader("X-Trace-Id")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := context.WithValue(c.Request.Context(), "trace_id", traceID)
		if accountID := AccountID(c); accountID > 0 {
			ctx = context.WithValue(ctx, "actor_id", accountID)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-Id", traceID)

		c.Next()

		log.Infof(c.Request.Context(), "%s %s status=%d duration=%v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
