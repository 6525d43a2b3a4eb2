package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeStudentNotFound = 20101

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents 学生列表
// GET /api/students/
func (h *StudentHandler) ListStudents(c *gin.Context) {
	list, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.StudentResponse]{List: list})
}

// CreateStudent 创建学生
// POST /api/students/
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.StudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.Created(c, student)
}

// GetStudent 学生详情
// GET /api/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseID(c, codeStudentNotFound, service.ErrStudentNotFound.Error())
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, student)
}

// GetStudentByUser 按外部用户标识查询
// GET /api/students/by_user/:user_id
func (h *StudentHandler) GetStudentByUser(c *gin.Context) {
	student, err := h.studentSvc.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, student)
}

// ReplaceStudent 整体替换学生
// PUT /api/students/:id
func (h *StudentHandler) ReplaceStudent(c *gin.Context) {
	id, ok := parseID(c, codeStudentNotFound, service.ErrStudentNotFound.Error())
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.studentSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, student)
}

// DeleteStudent 删除学生（级联删除缴费、观察记录与报名）
// DELETE /api/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c, codeStudentNotFound, service.ErrStudentNotFound.Error())
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.NoContent(c)
}

// handleStudentError 统一处理学生模块业务错误
func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, codeStudentNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
