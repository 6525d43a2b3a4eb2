package model

import "time"

// EnrollmentStatusActive 报名默认状态
const EnrollmentStatusActive = "Active"

// Enrollment 选课报名表 — 对应 enrollments
type Enrollment struct {
	ID             uint      `gorm:"primaryKey"                                  json:"id"`
	StudentID      uint      `gorm:"not null;index"                              json:"student_id"`
	CourseID       uint      `gorm:"not null;index"                              json:"course_id"`
	EnrollmentDate time.Time `gorm:"type:date;not null"                          json:"enrollment_date"`
	Status         string    `gorm:"type:varchar(50);not null;default:'Active'" json:"status"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"  json:"course,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

// CourseEnrollmentCount 按课程聚合的报名人数
type CourseEnrollmentCount struct {
	CourseID uint
	Total    int64
}
