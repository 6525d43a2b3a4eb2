package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeEnrollmentNotFound = 20701

// EnrollmentHandler 报名模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// ListEnrollments 报名列表
// GET /api/enrollments/
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	list, err := h.enrollmentSvc.List(c.Request.Context())
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.EnrollmentResponse]{List: list})
}

// CreateEnrollment 创建报名
// POST /api/enrollments/
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.EnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.Created(c, enrollment)
}

// GetEnrollment 报名详情
// GET /api/enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id, ok := parseID(c, codeEnrollmentNotFound, service.ErrEnrollmentNotFound.Error())
	if !ok {
		return
	}

	enrollment, err := h.enrollmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, enrollment)
}

// ReplaceEnrollment 整体替换报名
// PUT /api/enrollments/:id
func (h *EnrollmentHandler) ReplaceEnrollment(c *gin.Context) {
	id, ok := parseID(c, codeEnrollmentNotFound, service.ErrEnrollmentNotFound.Error())
	if !ok {
		return
	}
	var req dto.EnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollmentSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, enrollment)
}

// DeleteEnrollment 删除报名
// DELETE /api/enrollments/:id
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id, ok := parseID(c, codeEnrollmentNotFound, service.ErrEnrollmentNotFound.Error())
	if !ok {
		return
	}

	if err := h.enrollmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.NoContent(c)
}

// handleEnrollmentError 统一处理报名模块业务错误
func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, codeEnrollmentNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
