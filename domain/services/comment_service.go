package services

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/dto"
)

type CommentService interface {
	// ListTopLevel ดึง comment ระดับบนสุดของบทความ ใหม่สุดก่อน พร้อม reply tree
	ListTopLevel(ctx context.Context, articleSlug string, page, limit int, viewerID *uuid.UUID) ([]dto.CommentResponse, int64, error)

	// GetReplies ดึง direct replies ของ comment ใหม่สุดก่อน จำกัด 10 รายการเสมอ
	GetReplies(ctx context.Context, commentID uuid.UUID, viewerID *uuid.UUID) ([]dto.CommentResponse, error)

	// Create สร้าง comment บนบทความ ถ้ามี parentId parent ต้องอยู่บทความเดียวกัน
	Create(ctx context.Context, articleSlug string, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)

	// Update แก้ไขได้เฉพาะเจ้าของ (ownership masking แบบเดียวกับ article)
	Update(ctx context.Context, commentID uuid.UUID, authorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)

	// Delete ลบได้เฉพาะเจ้าของ cascade ไปยัง replies ทั้ง subtree
	Delete(ctx context.Context, commentID uuid.UUID, authorID uuid.UUID) error
}
