package model

import "time"

// Course 课程表 — 对应 courses
type Course struct {
	ID          uint       `gorm:"primaryKey"                 json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text;not null"         json:"description"`
	Level       string     `gorm:"type:varchar(50);not null"  json:"level"`
	TeacherID   *uint      `gorm:"index"                      json:"teacher_id"`
	StartDate   *time.Time `gorm:"type:date"                  json:"start_date"`
	EndDate     *time.Time `gorm:"type:date"                  json:"end_date"` // 预期 >= StartDate，不强制
	Room        *string    `gorm:"type:varchar(100);index"    json:"room"`
	BaseModel

	// 关联：删除教师时置空
	Teacher *Professor `gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:SET NULL" json:"teacher,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
