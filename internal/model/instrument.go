package model

// Instrument 乐器表 — 对应 instruments
type Instrument struct {
	ID          uint    `gorm:"primaryKey"                 json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description *string `gorm:"type:varchar(255)"          json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Instrument) TableName() string { return "instruments" }
