package dto

// ── 功能开关 DTO ──

// IAConfigRequest 设置 IA 开关
type IAConfigRequest struct {
	IAEnabled *bool `json:"ia_enabled" binding:"required"`
}

// IAConfigResponse IA 开关状态
type IAConfigResponse struct {
	IAEnabled bool `json:"ia_enabled"`
}
