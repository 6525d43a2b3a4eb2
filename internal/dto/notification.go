package dto

import "gorm.io/datatypes"

// ── 通知模块 DTO ──

// NotificationRequest 创建/整体替换通知请求
type NotificationRequest struct {
	Title            string         `json:"title"             binding:"required,max=200"`
	Message          string         `json:"message"           binding:"required"`
	TargetUser       *string        `json:"target_user"       binding:"omitempty,max=100"`
	PreferredChannel *string        `json:"preferred_channel" binding:"omitempty,max=50"`
	Read             bool           `json:"read"`
	Category         string         `json:"category"          binding:"omitempty,oneof=xeral aviso automatico"`
	Segment          *string        `json:"segment"           binding:"omitempty,max=100"`
	ExtraData        datatypes.JSON `json:"extra_data"`
}

// NotificationListRequest 通知列表查询参数
type NotificationListRequest struct {
	TargetUser string `form:"target_user" binding:"omitempty,max=100"`
}

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID               uint           `json:"id"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	SentAt           string         `json:"sent_at"`
	TargetUser       *string        `json:"target_user"`
	PreferredChannel *string        `json:"preferred_channel"`
	Read             bool           `json:"read"`
	ReadAt           *string        `json:"read_at"`
	Category         string         `json:"category"`
	Segment          *string        `json:"segment"`
	ExtraData        datatypes.JSON `json:"extra_data,omitempty"`
}
