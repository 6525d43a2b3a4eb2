package model

import "time"

// Student 学生表 — 对应 students
type Student struct {
	ID           uint      `gorm:"primaryKey"                        json:"id"`
	UserID       string    `gorm:"type:varchar(100);not null;index"  json:"user_id"`
	FirstName    string    `gorm:"type:varchar(100);not null"        json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null"        json:"last_name"`
	Email        string    `gorm:"type:varchar(254);not null"        json:"email"`
	DateOfBirth  time.Time `gorm:"type:date;not null"                json:"date_of_birth"`
	InstrumentID *uint     `gorm:"index"                             json:"instrument_id"`
	// LegacyInstrumentRef 历史数据中的 instr-N 占位符，修复任务处理后清空
	LegacyInstrumentRef *string   `gorm:"type:varchar(100)"  json:"-"`
	EnrollmentDate      time.Time `gorm:"type:date;not null" json:"enrollment_date"`
	Address             *string   `gorm:"type:varchar(255)"  json:"address,omitempty"`
	PhoneNumber         *string   `gorm:"type:varchar(50)"   json:"phone_number,omitempty"`
	BaseModel

	// 关联
	Instrument *Instrument `gorm:"foreignKey:InstrumentID;references:ID;constraint:OnDelete:SET NULL" json:"instrument,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// FullName 姓名
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
