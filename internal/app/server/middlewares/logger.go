package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mvmall/internal/app/pkg/logger"
)

// Logger 请求日志中间件，同时给请求 Context 注入 trace_id
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.WithTraceID(c.Request.Context(), uuid.New().String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		log.Infof(ctx, "%s %s status=%d cost=%v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
