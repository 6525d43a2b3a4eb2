package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const msgNoFile = "No se ha enviado ningún archivo"

// IAHandler 助手接口 HTTP 处理器
// 全部为确定性规则或统计，受 IA 开关与限流中间件保护
type IAHandler struct {
	assistantSvc service.AssistantService
	exportSvc    service.ExportService
}

// NewIAHandler 创建 IAHandler
func NewIAHandler(assistantSvc service.AssistantService, exportSvc service.ExportService) *IAHandler {
	return &IAHandler{assistantSvc: assistantSvc, exportSvc: exportSvc}
}

// ── 统计类 ──

// EnrollmentAnalysis 报名分析
// GET /api/ia/enrollment-analysis/
func (h *IAHandler) EnrollmentAnalysis(c *gin.Context) {
	result, err := h.assistantSvc.EnrollmentAnalysis(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ScheduleOptimization 教室重叠检测
// GET /api/ia/schedule-optimization/
func (h *IAHandler) ScheduleOptimization(c *gin.Context) {
	result, err := h.assistantSvc.ScheduleOptimization(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// DemandPrediction 需求预测
// GET /api/ia/demand-prediction/
func (h *IAHandler) DemandPrediction(c *gin.Context) {
	result, err := h.assistantSvc.DemandPrediction(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GenerateReport 月度报告；?format=xlsx 时以 Excel 下载
// GET /api/ia/generate-report/
func (h *IAHandler) GenerateReport(c *gin.Context) {
	var req dto.ReportRequest
	if !bindQuery(c, &req) {
		return
	}

	if req.Format == "xlsx" {
		buf, filename, err := h.exportSvc.ExportReport(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		sendFile(c, buf, filename, mimeXLSX)
		return
	}

	report, err := h.assistantSvc.MonthlyReport(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, report)
}

// ── 规则应答类 ──

// ProfessorFAQ 教师常见问题
// POST /api/ia/professor-faq/
func (h *IAHandler) ProfessorFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if !bindJSON(c, &req) {
		return
	}
	response.OK(c, h.assistantSvc.ProfessorFAQ(c.Request.Context(), &req))
}

// DocumentReview 文档审核（multipart 字段 file，只检查文件名与大小）
// POST /api/ia/document-review/
func (h *IAHandler) DocumentReview(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.UnsupportedMedia(c, 10006, msgNoFile)
		return
	}
	response.OK(c, h.assistantSvc.ReviewDocument(c.Request.Context(), file.Filename, file.Size))
}

// ResourceSuggestions 学习资源建议
// POST /api/ia/resources-suggestions/
func (h *IAHandler) ResourceSuggestions(c *gin.Context) {
	var req dto.ResourceSuggestionRequest
	if !bindJSON(c, &req) {
		return
	}
	response.OK(c, h.assistantSvc.ResourceSuggestions(c.Request.Context(), &req))
}

// FamilyMessage 生成给家长的消息
// POST /api/ia/generate-family-message/
func (h *IAHandler) FamilyMessage(c *gin.Context) {
	var req dto.FamilyMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	response.OK(c, h.assistantSvc.FamilyMessage(c.Request.Context(), &req))
}
