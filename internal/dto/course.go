package dto

// ── 课程模块 DTO ──

// CourseRequest 创建/整体替换课程请求
type CourseRequest struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Level       string  `json:"level"       binding:"required,max=50"`
	TeacherID   *uint   `json:"teacher_id"  binding:"omitempty,min=1"`
	StartDate   *string `json:"start_date"  binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"    binding:"omitempty,datetime=2006-01-02"`
	Room        *string `json:"room"        binding:"omitempty,max=100"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Level       string  `json:"level"`
	TeacherID   *uint   `json:"teacher_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Room        *string `json:"room"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
