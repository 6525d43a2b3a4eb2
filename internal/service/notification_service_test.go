package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

func setupTestNotificationService() (NotificationService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewNotificationService(repo, zap.NewNop()), mocks
}

func TestNotificationService_Create_Defaults(t *testing.T) {
	svc, _ := setupTestNotificationService()

	result, err := svc.Create(context.Background(), &dto.NotificationRequest{
		Title: "Audición", Message: "El viernes a las 18:00",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Category != model.NotificationCategoryGeneral {
		t.Errorf("期望默认类别 xeral，实际=%s", result.Category)
	}
	if result.Read || result.ReadAt != nil {
		t.Error("新通知应为未读")
	}
	if result.SentAt == "" {
		t.Error("期望写入 sent_at")
	}
}

func TestNotificationService_MarkRead_KeepsFirstReadAt(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, &dto.NotificationRequest{Title: "t", Message: "m"})

	first, err := svc.MarkRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("MarkRead 应成功: %v", err)
	}
	if !first.Read || first.ReadAt == nil {
		t.Fatal("期望已读且有 read_at")
	}

	earlier := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mocks.notification.notifications[created.ID].ReadAt = &earlier

	second, err := svc.MarkRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("重复 MarkRead 应成功: %v", err)
	}
	if *second.ReadAt != "2024-05-01T10:00:00Z" {
		t.Errorf("重复标记不应改变 read_at，实际=%s", *second.ReadAt)
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, _ := setupTestNotificationService()

	if _, err := svc.MarkRead(context.Background(), 11); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("期望 ErrNotificationNotFound，实际: %v", err)
	}
}

func TestNotificationService_Replace_ReadTransitions(t *testing.T) {
	svc, _ := setupTestNotificationService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, &dto.NotificationRequest{Title: "t", Message: "m"})

	read, err := svc.Replace(ctx, created.ID, &dto.NotificationRequest{Title: "t", Message: "m", Read: true})
	if err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}
	if read.ReadAt == nil {
		t.Error("read 变为 true 时应写入 read_at")
	}
	if read.SentAt != created.SentAt {
		t.Errorf("sent_at 不应改变: %s → %s", created.SentAt, read.SentAt)
	}

	unread, err := svc.Replace(ctx, created.ID, &dto.NotificationRequest{Title: "t", Message: "m", Read: false})
	if err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}
	if unread.ReadAt != nil {
		t.Error("read 变为 false 时应清空 read_at")
	}
}

func TestNotificationService_List_ByTargetUser(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()
	ana, bea := "ana", "bea"
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	mocks.notification.Create(ctx, &model.Notification{Title: "1", TargetUser: &ana, SentAt: base})
	mocks.notification.Create(ctx, &model.Notification{Title: "2", TargetUser: &bea, SentAt: base})
	mocks.notification.Create(ctx, &model.Notification{Title: "3", TargetUser: &ana, SentAt: base.Add(time.Hour)})

	list, err := svc.List(ctx, &dto.NotificationListRequest{TargetUser: "ana"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望 2 条，实际=%d", len(list))
	}
	if list[0].Title != "3" {
		t.Errorf("期望按发送时间倒序，首条=%s", list[0].Title)
	}
}
