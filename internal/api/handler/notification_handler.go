package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

const codeNotificationNotFound = 20801

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications 通知列表
// GET /api/notifications/
// 可选过滤：?target_user=
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var req dto.NotificationListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.notificationSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, dto.ListResponse[dto.NotificationResponse]{List: list})
}

// CreateNotification 创建通知
// POST /api/notifications/
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	notification, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.Created(c, notification)
}

// GetNotification 通知详情
// GET /api/notifications/:id
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := parseID(c, codeNotificationNotFound, service.ErrNotificationNotFound.Error())
	if !ok {
		return
	}

	notification, err := h.notificationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, notification)
}

// ReplaceNotification 整体替换通知
// PUT /api/notifications/:id
func (h *NotificationHandler) ReplaceNotification(c *gin.Context) {
	id, ok := parseID(c, codeNotificationNotFound, service.ErrNotificationNotFound.Error())
	if !ok {
		return
	}
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	notification, err := h.notificationSvc.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, notification)
}

// DeleteNotification 删除通知
// DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := parseID(c, codeNotificationNotFound, service.ErrNotificationNotFound.Error())
	if !ok {
		return
	}

	if err := h.notificationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.NoContent(c)
}

// MarkRead 标记已读（重复调用保留第一次的 read_at）
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, codeNotificationNotFound, service.ErrNotificationNotFound.Error())
	if !ok {
		return
	}

	notification, err := h.notificationSvc.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, notification)
}

// handleNotificationError 统一处理通知模块业务错误
func (h *NotificationHandler) handleNotificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, codeNotificationNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		renderValidation(c, err)
	default:
		response.InternalError(c)
	}
}
