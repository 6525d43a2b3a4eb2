package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// ── 通知模块业务错误 ──

var (
	ErrNotificationNotFound = errors.New("Notificación no encontrada")
)

// NotificationService 通知业务接口
type NotificationService interface {
	// Create sent_at 取创建时刻
	Create(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.NotificationResponse, error)
	List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error)
	Replace(ctx context.Context, id uint, req *dto.NotificationRequest) (*dto.NotificationResponse, error)
	Delete(ctx context.Context, id uint) error
	// MarkRead 幂等，重复调用保留第一次的 read_at
	MarkRead(ctx context.Context, id uint) (*dto.NotificationResponse, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *notificationService) Create(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error) {
	now := time.Now()
	n := &model.Notification{SentAt: now}
	applyNotification(n, req, now)

	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Error("创建通知失败", zap.Error(err))
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *notificationService) GetByID(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	n, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// ────────────────────── List ──────────────────────

func (s *notificationService) List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error) {
	list, err := s.repo.Notification.List(ctx, req.TargetUser)
	if err != nil {
		s.logger.Error("列出通知失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NotificationResponse, 0, len(list))
	for i := range list {
		result = append(result, *toNotificationResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *notificationService) Replace(ctx context.Context, id uint, req *dto.NotificationRequest) (*dto.NotificationResponse, error) {
	n, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	applyNotification(n, req, time.Now())

	if err := s.repo.Notification.Update(ctx, n); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("更新通知失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// ────────────────────── Delete ──────────────────────

func (s *notificationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Notification.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("删除通知失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── MarkRead ──────────────────────

func (s *notificationService) MarkRead(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	if err := s.repo.Notification.MarkRead(ctx, id, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("标记通知已读失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ── 内部辅助方法 ──

// applyNotification 写入可变字段；sent_at 不变，read 从 false 变 true 时记录 read_at
func applyNotification(n *model.Notification, req *dto.NotificationRequest, now time.Time) {
	category := req.Category
	if category == "" {
		category = model.NotificationCategoryGeneral
	}

	n.Title = req.Title
	n.Message = req.Message
	n.TargetUser = req.TargetUser
	n.PreferredChannel = req.PreferredChannel
	n.Category = category
	n.Segment = req.Segment
	n.ExtraData = req.ExtraData

	switch {
	case req.Read && n.ReadAt == nil:
		n.ReadAt = &now
	case !req.Read:
		n.ReadAt = nil
	}
	n.Read = req.Read
}

func toNotificationResponse(n *model.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:               n.ID,
		Title:            n.Title,
		Message:          n.Message,
		SentAt:           formatTimestamp(n.SentAt),
		TargetUser:       n.TargetUser,
		PreferredChannel: n.PreferredChannel,
		Read:             n.Read,
		ReadAt:           formatTimestampPtr(n.ReadAt),
		Category:         n.Category,
		Segment:          n.Segment,
		ExtraData:        n.ExtraData,
	}
}
