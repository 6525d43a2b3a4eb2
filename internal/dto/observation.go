package dto

// ── 观察记录模块 DTO ──

// ObservationRequest 创建/整体替换观察记录请求；date 由服务端在创建时写入
type ObservationRequest struct {
	StudentID   uint   `json:"student_id"   binding:"required"`
	CourseID    uint   `json:"course_id"    binding:"required"`
	ProfessorID uint   `json:"professor_id" binding:"required"`
	Text        string `json:"text"         binding:"required"`
}

// ObservationListRequest 观察记录过滤参数，全部可选
type ObservationListRequest struct {
	Student   *uint `form:"student"`
	Course    *uint `form:"course"`
	Professor *uint `form:"professor"`
}

// ObservationResponse 观察记录响应
type ObservationResponse struct {
	ID          uint   `json:"id"`
	StudentID   uint   `json:"student_id"`
	CourseID    uint   `json:"course_id"`
	ProfessorID uint   `json:"professor_id"`
	Date        string `json:"date"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
