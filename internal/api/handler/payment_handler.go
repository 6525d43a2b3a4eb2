package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codePaymentNotFound = 20401

// PaymentHandler 缴费模块 HTTP 处理器
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

// NewPaymentHandler 创建 PaymentHandler
func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ListPayments 缴费列表
// GET /api/payments/
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.paymentSvc.List(c.Request.Context())
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.PaymentResponse]{List: list})
}

// CreatePayment 创建缴费
// POST /api/payments/
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.Created(c, payment)
}

// GetPayment 缴费详情
// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c, codePaymentNotFound, service.ErrPaymentNotFound.Error())
	if !ok {
		return
	}

	payment, err := h.paymentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, payment)
}

// ReplacePayment 整体替换缴费
// PUT /api/payments/:id
func (h *PaymentHandler) ReplacePayment(c *gin.Context) {
	id, ok := parseID(c, codePaymentNotFound, service.ErrPaymentNotFound.Error())
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, payment)
}

// DeletePayment 删除缴费
// DELETE /api/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c, codePaymentNotFound, service.ErrPaymentNotFound.Error())
	if !ok {
		return
	}

	if err := h.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.NoContent(c)
}

// handlePaymentError 统一处理缴费模块业务错误
func (h *PaymentHandler) handlePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		response.NotFound(c, codePaymentNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
