package model

import (
	"time"

	"gorm.io/datatypes"
)

// 通知类别
const (
	NotificationCategoryGeneral   = "xeral"
	NotificationCategoryWarning   = "aviso"
	NotificationCategoryAutomatic = "automatico"
)

// Notification 通知消息表 — 对应 notifications
type Notification struct {
	ID               uint           `gorm:"primaryKey"                               json:"id"`
	Title            string         `gorm:"type:varchar(200);not null"               json:"title"`
	Message          string         `gorm:"type:text;not null"                       json:"message"`
	SentAt           time.Time      `gorm:"not null"                                 json:"sent_at"`
	TargetUser       *string        `gorm:"type:varchar(100);index"                  json:"target_user,omitempty"`
	PreferredChannel *string        `gorm:"type:varchar(50)"                         json:"preferred_channel,omitempty"`
	Read             bool           `gorm:"not null;default:false"                   json:"read"`
	ReadAt           *time.Time     `json:"read_at,omitempty"`
	Category         string         `gorm:"type:varchar(20);not null;default:'xeral'" json:"category"`
	Segment          *string        `gorm:"type:varchar(100)"                        json:"segment,omitempty"`
	ExtraData        datatypes.JSON `json:"extra_data,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }
