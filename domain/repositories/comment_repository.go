package repositories

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// GetOwned ดึง comment ด้วยเงื่อนไข id + author_id ใน query เดียว (ownership masking)
	GetOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	// DeleteOwned ลบ comment ของเจ้าของ พร้อม replies ทั้ง subtree ใน transaction เดียว
	DeleteOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (int64, error)
	// ListTopLevel ดึง comment ระดับบนสุด (parent IS NULL) ของบทความ ใหม่สุดก่อน
	ListTopLevel(ctx context.Context, articleID uuid.UUID, offset, limit int) ([]*models.Comment, int64, error)
	// ListReplies ดึง direct replies ของ comment ใหม่สุดก่อน จำกัดจำนวนด้วย limit
	ListReplies(ctx context.Context, parentID uuid.UUID, limit int) ([]*models.Comment, error)
	// HasReplyByAuthor ตรวจสอบว่า author เคยตอบ parent นี้แล้วหรือยัง (duplicate-reply policy)
	HasReplyByAuthor(ctx context.Context, parentID uuid.UUID, authorID uuid.UUID) (bool, error)
}
