package model

import "time"

// 常用缴费状态（列本身不做枚举约束）
const (
	PaymentStatusPaid      = "Paid"
	PaymentStatusPending   = "Pending"
	PaymentStatusOverdue   = "Overdue"
	PaymentStatusCancelled = "Cancelled"
)

// Payment 缴费表 — 对应 payments（随学生级联删除）
type Payment struct {
	ID          uint       `gorm:"primaryKey"                       json:"id"`
	StudentID   uint       `gorm:"not null;index"                   json:"student_id"`
	Amount      float64    `gorm:"type:double precision;not null"   json:"amount"`
	PaymentDate *time.Time `gorm:"type:date"                        json:"payment_date"`
	DueDate     time.Time  `gorm:"type:date;not null"               json:"due_date"`
	Status      string     `gorm:"type:varchar(50);not null"        json:"status"`
	Description string     `gorm:"type:varchar(255);not null"       json:"description"`
	InvoiceURL  *string    `gorm:"column:invoice_url;type:varchar(255)" json:"invoice_url,omitempty"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

// TableName 指定表名
func (Payment) TableName() string { return "payments" }
