package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/ports"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/pkg/config"
	"blog-api/pkg/logger"
	"blog-api/pkg/utils"
)

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	retentionDays    int
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, blogCfg config.BlogConfig) services.NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		retentionDays:    blogCfg.NotificationRetentionDays,
	}
}

// Record แปลง event จาก bus เป็น notification row
func (s *NotificationServiceImpl) Record(ctx context.Context, event *ports.BlogEvent) error {
	// event ถึงตัวเอง (สร้างจาก version เก่าของ publisher) ข้ามไป
	if event.ActorID == event.RecipientID {
		return nil
	}

	notification := &models.Notification{
		RecipientID: event.RecipientID,
		ActorID:     event.ActorID,
		Kind:        event.Kind,
		ArticleID:   event.ArticleID,
		CommentID:   event.CommentID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		logger.ErrorContext(ctx, "Failed to record notification", "kind", event.Kind, "error", err)
		return err
	}

	return nil
}

func (s *NotificationServiceImpl) List(ctx context.Context, recipientID uuid.UUID, page, limit int) ([]dto.NotificationResponse, int64, error) {
	_, limit, offset := utils.NormalizePagination(page, limit)

	notifications, total, err := s.notificationRepo.ListByRecipient(ctx, recipientID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return dto.NotificationsToResponses(notifications), total, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) error {
	rows, err := s.notificationRepo.MarkRead(ctx, id, recipientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, recipientID)
}

// PurgeOld ลบ notification ที่อ่านแล้วและเก่ากว่า retention เรียกจาก scheduler วันละครั้ง
func (s *NotificationServiceImpl) PurgeOld(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.notificationRepo.PurgeReadBefore(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to purge notifications", "error", err)
		return 0, err
	}

	if deleted > 0 {
		logger.InfoContext(ctx, "Old notifications purged", "deleted", deleted, "cutoff", cutoff)
	}

	return deleted, nil
}
