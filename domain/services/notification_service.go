package services

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/ports"
)

type NotificationService interface {
	// Record เก็บ event จาก event bus เป็น notification row
	// ไม่สร้าง notification ให้ตัวเอง (actor == recipient)
	Record(ctx context.Context, event *ports.BlogEvent) error

	List(ctx context.Context, recipientID uuid.UUID, page, limit int) ([]dto.NotificationResponse, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error

	// PurgeOld ลบ notification ที่อ่านแล้วและเก่ากว่า retention (เรียกจาก scheduler)
	PurgeOld(ctx context.Context) (int64, error)
}
