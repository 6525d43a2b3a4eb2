package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// Content-Length 已超限时直接返回 413；未声明长度的请求由 MaxBytesReader 在读取时截断，
// 绑定失败后由 handler 转换为 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "La petición es demasiado grande")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
