package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id uint) (*model.Notification, error)
	// List targetUser 非空时只返回该用户的通知，按发送时间倒序
	List(ctx context.Context, targetUser string) ([]model.Notification, error)
	Update(ctx context.Context, n *model.Notification) error
	Delete(ctx context.Context, id uint) error
	// MarkRead 标记已读；已读的通知保留第一次的 read_at
	MarkRead(ctx context.Context, id uint, at time.Time) error
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo 创建 NotificationRepository 实例
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) GetByID(ctx context.Context, id uint) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) List(ctx context.Context, targetUser string) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{})
	if targetUser != "" {
		query = query.Where("target_user = ?", targetUser)
	}

	var list []model.Notification
	err := query.Order("sent_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *notificationRepo) Update(ctx context.Context, n *model.Notification) error {
	res := r.db.WithContext(ctx).
		Model(n).
		Select("*").
		Omit("created_at").
		Updates(n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Notification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND read = ?", id, false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// 未更新：要么不存在，要么已读
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
