package dto

// ── 学生模块 DTO ──

// StudentRequest 创建/整体替换学生请求
type StudentRequest struct {
	UserID         string  `json:"user_id"         binding:"required,max=100"`
	FirstName      string  `json:"first_name"      binding:"required,max=100"`
	LastName       string  `json:"last_name"       binding:"required,max=100"`
	Email          string  `json:"email"           binding:"required,email,max=254"`
	DateOfBirth    string  `json:"date_of_birth"   binding:"required,datetime=2006-01-02"`
	InstrumentID   uint    `json:"instrument_id"   binding:"required"`
	EnrollmentDate string  `json:"enrollment_date" binding:"required,datetime=2006-01-02"`
	Address        *string `json:"address"         binding:"omitempty,max=255"`
	PhoneNumber    *string `json:"phone_number"    binding:"omitempty,max=50"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID             uint    `json:"id"`
	UserID         string  `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	DateOfBirth    string  `json:"date_of_birth"`
	InstrumentID   *uint   `json:"instrument_id"`
	EnrollmentDate string  `json:"enrollment_date"`
	Address        *string `json:"address"`
	PhoneNumber    *string `json:"phone_number"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
