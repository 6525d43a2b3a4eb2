package handler

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const (
	mimeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCalendar = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCourseCalendar 导出课程日历（iCalendar）
// GET /api/courses/calendar.ics
func (h *ExportHandler) ExportCourseCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportCourseCalendar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	sendFile(c, buf, filename, mimeCalendar)
}

// ExportReport 导出月度报告（Excel）
func (h *ExportHandler) ExportReport(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportReport(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	sendFile(c, buf, filename, mimeXLSX)
}

// sendFile 设置下载响应头并写出文件
func sendFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
