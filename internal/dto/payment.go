package dto

// ── 缴费模块 DTO ──

// PaymentRequest 创建/整体替换缴费请求
type PaymentRequest struct {
	StudentID   uint     `json:"student_id"   binding:"required"`
	Amount      *float64 `json:"amount"       binding:"required,gte=0"`
	PaymentDate *string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate     string   `json:"due_date"     binding:"required,datetime=2006-01-02"`
	Status      string   `json:"status"       binding:"required,max=50"`
	Description string   `json:"description"  binding:"required,max=255"`
	InvoiceURL  *string  `json:"invoice_url"  binding:"omitempty,url,max=255"`
}

// PaymentResponse 缴费信息响应
type PaymentResponse struct {
	ID          uint    `json:"id"`
	StudentID   uint    `json:"student_id"`
	Amount      float64 `json:"amount"`
	PaymentDate *string `json:"payment_date"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	InvoiceURL  *string `json:"invoice_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
