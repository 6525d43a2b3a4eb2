package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/redis"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的速率限制中间件（按客户端 IP + 路由计数）
// limit: 窗口内允许的最大请求数
// window: 滑动窗口时长
// rdb 为 nil 或 Redis 出错时降级放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ia:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("限流检查失败，降级放行", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%.0f", window.Seconds()))
			response.Error(c, http.StatusTooManyRequests, 10004, "Demasiadas peticiones, inténtelo de nuevo más tarde")
			c.Abort()
			return
		}
		c.Next()
	}
}
