package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeProfessorNotFound = 20201

// ProfessorHandler 教师模块 HTTP 处理器
type ProfessorHandler struct {
	professorSvc service.ProfessorService
}

// NewProfessorHandler 创建 ProfessorHandler
func NewProfessorHandler(professorSvc service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorSvc: professorSvc}
}

// ListProfessors 教师列表
// GET /api/professors/
func (h *ProfessorHandler) ListProfessors(c *gin.Context) {
	list, err := h.professorSvc.List(c.Request.Context())
	if err != nil {
		h.handleProfessorError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.ProfessorResponse]{List: list})
}

// CreateProfessor 创建教师
// POST /api/professors/
func (h *ProfessorHandler) CreateProfessor(c *gin.Context) {
	var req dto.ProfessorRequest
	if !bindJSON(c, &req) {
		return
	}

	professor, err := h.professorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleProfessorError(c, err)
		return
	}
	response.Created(c, professor)
}

// GetProfessor 教师详情
// GET /api/professors/:id
func (h *ProfessorHandler) GetProfessor(c *gin.Context) {
	id, ok := parseID(c, codeProfessorNotFound, service.ErrProfessorNotFound.Error())
	if !ok {
		return
	}

	professor, err := h.professorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleProfessorError(c, err)
		return
	}
	response.OK(c, professor)
}

// ReplaceProfessor 整体替换教师
// PUT /api/professors/:id
func (h *ProfessorHandler) ReplaceProfessor(c *gin.Context) {
	id, ok := parseID(c, codeProfessorNotFound, service.ErrProfessorNotFound.Error())
	if !ok {
		return
	}
	var req dto.ProfessorRequest
	if !bindJSON(c, &req) {
		return
	}

	professor, err := h.professorSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleProfessorError(c, err)
		return
	}
	response.OK(c, professor)
}

// DeleteProfessor 删除教师（课程的 teacher_id 置空，观察记录级联删除）
// DELETE /api/professors/:id
func (h *ProfessorHandler) DeleteProfessor(c *gin.Context) {
	id, ok := parseID(c, codeProfessorNotFound, service.ErrProfessorNotFound.Error())
	if !ok {
		return
	}

	if err := h.professorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleProfessorError(c, err)
		return
	}
	response.NoContent(c)
}

// handleProfessorError 统一处理教师模块业务错误
func (h *ProfessorHandler) handleProfessorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfessorNotFound):
		response.NotFound(c, codeProfessorNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
