package dto

// ── 通用响应 ──

// WelcomeResponse 欢迎信息
type WelcomeResponse struct {
	Message string `json:"message"`
}

// HealthResponse 健康检查
type HealthResponse struct {
	Status string `json:"status"`
}

// ListResponse 列表响应
type ListResponse[T any] struct {
	List []T `json:"list"`
}
