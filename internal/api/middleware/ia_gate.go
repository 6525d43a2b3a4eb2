package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// IAToggle IA 开关读取接口（由 SystemConfigService 实现）
type IAToggle interface {
	IAEnabled(ctx context.Context) bool
}

// IAGate IA 接口开关中间件：关闭时返回 503，每次请求实时读取开关
func IAGate(toggle IAToggle) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !toggle.IAEnabled(c.Request.Context()) {
			response.Error(c, http.StatusServiceUnavailable, 30001, "Las funciones de IA están desactivadas")
			c.Abort()
			return
		}
		c.Next()
	}
}
