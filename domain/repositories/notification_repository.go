package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, offset, limit int) ([]*models.Notification, int64, error)
	// MarkRead อัปเดตเฉพาะ notification ของ recipient เอง คืนจำนวน row ที่อัปเดต
	MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
	// PurgeReadBefore ลบ notification ที่อ่านแล้วและเก่ากว่า cutoff (maintenance job)
	PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
