package dto

// ── 乐器模块 DTO ──

// InstrumentRequest 创建乐器请求
type InstrumentRequest struct {
	Name        string  `json:"name"        binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// InstrumentResponse 乐器信息响应
type InstrumentResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
