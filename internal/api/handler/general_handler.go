package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const (
	welcomeMessage = "Bienvenido al backend de Xestión Conservatorio. API disponible en /api/"
	helloMessage   = "¡Hola desde el backend de Xestión Conservatorio!"
)

// Welcome 欢迎信息
// GET / 与 GET /api/
func Welcome(c *gin.Context) {
	response.OK(c, dto.WelcomeResponse{Message: welcomeMessage})
}

// Hello 连通性测试
// GET /api/hello/
func Hello(c *gin.Context) {
	response.OK(c, dto.WelcomeResponse{Message: helloMessage})
}

// Health 健康检查
// GET /health
func Health(c *gin.Context) {
	response.OK(c, dto.HealthResponse{Status: "ok"})
}
