package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// SystemConfigHandler 全局开关 HTTP 处理器（不受 IA 开关本身限制）
type SystemConfigHandler struct {
	configSvc service.SystemConfigService
}

// NewSystemConfigHandler 创建 SystemConfigHandler
func NewSystemConfigHandler(configSvc service.SystemConfigService) *SystemConfigHandler {
	return &SystemConfigHandler{configSvc: configSvc}
}

// GetIAEnabled 读取 IA 开关
// GET /api/config/ia_enabled/
func (h *SystemConfigHandler) GetIAEnabled(c *gin.Context) {
	response.OK(c, h.configSvc.GetIA(c.Request.Context()))
}

// SetIAEnabled 设置 IA 开关
// POST /api/config/ia_enabled/
func (h *SystemConfigHandler) SetIAEnabled(c *gin.Context) {
	var req dto.IAConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.configSvc.SetIA(c.Request.Context(), &req)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.OK(c, cfg)
}

// handleConfigError 统一处理开关模块业务错误
func (h *SystemConfigHandler) handleConfigError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIAConfigWriteFailed):
		response.Error(c, http.StatusInternalServerError, 30101, err.Error())
	default:
		response.InternalError(c)
	}
}
