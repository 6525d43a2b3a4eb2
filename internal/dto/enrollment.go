package dto

// ── 报名模块 DTO ──

// EnrollmentRequest 创建/整体替换报名请求；status 为空时为 Active
type EnrollmentRequest struct {
	StudentID      uint   `json:"student_id"      binding:"required"`
	CourseID       uint   `json:"course_id"       binding:"required"`
	EnrollmentDate string `json:"enrollment_date" binding:"required,datetime=2006-01-02"`
	Status         string `json:"status"          binding:"omitempty,max=50"`
}

// EnrollmentResponse 报名信息响应
type EnrollmentResponse struct {
	ID             uint   `json:"id"`
	StudentID      uint   `json:"student_id"`
	CourseID       uint   `json:"course_id"`
	EnrollmentDate string `json:"enrollment_date"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
