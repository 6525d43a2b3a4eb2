package dto

// ── 教师模块 DTO ──

// ProfessorRequest 创建/整体替换教师请求
type ProfessorRequest struct {
	UserID           string  `json:"user_id"           binding:"required,max=100"`
	FirstName        string  `json:"first_name"        binding:"required,max=100"`
	LastName         string  `json:"last_name"         binding:"required,max=100"`
	Email            string  `json:"email"             binding:"required,email,max=254"`
	Specialty        string  `json:"specialty"         binding:"required,max=255"`
	HireDate         string  `json:"hire_date"         binding:"required,datetime=2006-01-02"`
	PhoneNumber      *string `json:"phone_number"      binding:"omitempty,max=50"`
	TutoringSchedule *string `json:"tutoring_schedule" binding:"omitempty,max=255"`
	Classrooms       *string `json:"classrooms"        binding:"omitempty,max=255"`
}

// ProfessorResponse 教师信息响应
type ProfessorResponse struct {
	ID               uint    `json:"id"`
	UserID           string  `json:"user_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Specialty        string  `json:"specialty"`
	HireDate         string  `json:"hire_date"`
	PhoneNumber      *string `json:"phone_number"`
	TutoringSchedule *string `json:"tutoring_schedule"`
	Classrooms       *string `json:"classrooms"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
