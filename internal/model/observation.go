package model

import "time"

// Observation 教师观察记录 — 对应 observations
// Date 在创建时写入，之后不可修改
type Observation struct {
	ID          uint      `gorm:"primaryKey"         json:"id"`
	StudentID   uint      `gorm:"not null;index"     json:"student_id"`
	CourseID    uint      `gorm:"not null;index"     json:"course_id"`
	ProfessorID uint      `gorm:"not null;index"     json:"professor_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	BaseModel

	// 关联（均随父记录级联删除）
	Student   *Student   `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"   json:"student,omitempty"`
	Course    *Course    `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"    json:"course,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ID;constraint:OnDelete:CASCADE" json:"professor,omitempty"`
}

// TableName 指定表名
func (Observation) TableName() string { return "observations" }

// ObservationFilter 观察记录过滤条件，nil 表示不过滤
type ObservationFilter struct {
	StudentID   *uint
	CourseID    *uint
	ProfessorID *uint
}
