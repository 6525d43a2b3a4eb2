package model

import "time"

// Professor 教师表 — 对应 professors
type Professor struct {
	ID               uint      `gorm:"primaryKey"                 json:"id"`
	UserID           string    `gorm:"type:varchar(100);not null" json:"user_id"`
	FirstName        string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email            string    `gorm:"type:varchar(254);not null" json:"email"`
	Specialty        string    `gorm:"type:varchar(255);not null" json:"specialty"`
	HireDate         time.Time `gorm:"type:date;not null"         json:"hire_date"`
	PhoneNumber      *string   `gorm:"type:varchar(50)"           json:"phone_number,omitempty"`
	TutoringSchedule *string   `gorm:"type:varchar(255)"          json:"tutoring_schedule,omitempty"`
	Classrooms       *string   `gorm:"type:varchar(255)"          json:"classrooms,omitempty"` // 逗号分隔
	BaseModel
}

// TableName 指定表名
func (Professor) TableName() string { return "professors" }
