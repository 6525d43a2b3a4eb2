package dto

import "github.com/twistin/xestion-conservatorio-rsp/internal/analytics"

// ── 助手（IA）模块 DTO ──

// FAQRequest 教师常见问题请求
type FAQRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}

// FAQResponse 常见问题回答
type FAQResponse struct {
	Answer string `json:"answer"`
}

// ResourceSuggestionRequest 资源建议请求，字段均可为空
type ResourceSuggestionRequest struct {
	Level      string `json:"level"      binding:"omitempty,max=100"`
	Instrument string `json:"instrument" binding:"omitempty,max=100"`
	Topic      string `json:"topic"      binding:"omitempty,max=200"`
}

// ResourceSuggestionResponse 资源建议
type ResourceSuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
}

// FamilyMessageRequest 家长消息请求
type FamilyMessageRequest struct {
	Motivo string `json:"motivo" binding:"required,max=500"`
	Alumno string `json:"alumno" binding:"required,max=200"`
}

// FamilyMessageResponse 家长消息
type FamilyMessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// DocumentReviewResponse 文档审核结果
type DocumentReviewResponse struct {
	Result   string `json:"result"`
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// ScheduleOptimizationResponse 教室排期建议
type ScheduleOptimizationResponse struct {
	Optimizations []analytics.ScheduleOverlap `json:"optimizations"`
}

// DemandPredictionResponse 需求预测
type DemandPredictionResponse struct {
	Predictions []analytics.DemandPrediction `json:"predictions"`
}

// ReportRequest 报告查询参数
type ReportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}
