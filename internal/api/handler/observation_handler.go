package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeObservationNotFound = 20601

// ObservationHandler 观察记录模块 HTTP 处理器
type ObservationHandler struct {
	observationSvc service.ObservationService
}

// NewObservationHandler 创建 ObservationHandler
func NewObservationHandler(observationSvc service.ObservationService) *ObservationHandler {
	return &ObservationHandler{observationSvc: observationSvc}
}

// ListObservations 观察记录列表
// GET /api/observations/
// 可选过滤：?student=&course=&professor=
func (h *ObservationHandler) ListObservations(c *gin.Context) {
	var req dto.ObservationListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.observationSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleObservationError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.ObservationResponse]{List: list})
}

// CreateObservation 创建观察记录
// POST /api/observations/
func (h *ObservationHandler) CreateObservation(c *gin.Context) {
	var req dto.ObservationRequest
	if !bindJSON(c, &req) {
		return
	}

	observation, err := h.observationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleObservationError(c, err)
		return
	}
	response.Created(c, observation)
}

// GetObservation 观察记录详情
// GET /api/observations/:id
func (h *ObservationHandler) GetObservation(c *gin.Context) {
	id, ok := parseID(c, codeObservationNotFound, service.ErrObservationNotFound.Error())
	if !ok {
		return
	}

	observation, err := h.observationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleObservationError(c, err)
		return
	}
	response.OK(c, observation)
}

// ReplaceObservation 整体替换观察记录
// PUT /api/observations/:id
func (h *ObservationHandler) ReplaceObservation(c *gin.Context) {
	id, ok := parseID(c, codeObservationNotFound, service.ErrObservationNotFound.Error())
	if !ok {
		return
	}
	var req dto.ObservationRequest
	if !bindJSON(c, &req) {
		return
	}

	observation, err := h.observationSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleObservationError(c, err)
		return
	}
	response.OK(c, observation)
}

// DeleteObservation 删除观察记录
// DELETE /api/observations/:id
func (h *ObservationHandler) DeleteObservation(c *gin.Context) {
	id, ok := parseID(c, codeObservationNotFound, service.ErrObservationNotFound.Error())
	if !ok {
		return
	}

	if err := h.observationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleObservationError(c, err)
		return
	}
	response.NoContent(c)
}

// handleObservationError 统一处理观察记录模块业务错误
func (h *ObservationHandler) handleObservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrObservationNotFound):
		response.NotFound(c, codeObservationNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
