package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// InstrumentHandler 乐器目录 HTTP 处理器（只支持列表与创建）
type InstrumentHandler struct {
	instrumentSvc service.InstrumentService
}

// NewInstrumentHandler 创建 InstrumentHandler
func NewInstrumentHandler(instrumentSvc service.InstrumentService) *InstrumentHandler {
	return &InstrumentHandler{instrumentSvc: instrumentSvc}
}

// ListInstruments 乐器列表
// GET /api/instruments/
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	list, err := h.instrumentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.ListResponse[dto.InstrumentResponse]{List: list})
}

// CreateInstrument 创建乐器
// POST /api/instruments/
func (h *InstrumentHandler) CreateInstrument(c *gin.Context) {
	var req dto.InstrumentRequest
	if !bindJSON(c, &req) {
		return
	}

	inst, err := h.instrumentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, inst)
}
