package services

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/dto"
)

type ArticleService interface {
	// List ดึงบทความใหม่สุดก่อน filter ด้วย category slug และ title search (AND)
	// viewerID ใช้เติม isLiked (nil = anonymous)
	List(ctx context.Context, filter *dto.ArticleFilter, viewerID *uuid.UUID) ([]dto.ArticleListItem, int64, error)

	// Get ดึง detail ตาม slug และเพิ่ม view counter 1 ครั้งต่อการเรียก (ไม่ dedupe ต่อ viewer)
	Get(ctx context.Context, slug string, viewerID *uuid.UUID) (*dto.ArticleDetailResponse, error)

	// Create สร้างบทความ เฉพาะ account ที่ publish ได้ (author/admin)
	Create(ctx context.Context, authorID uuid.UUID, req *dto.CreateArticleRequest) (*dto.ArticleDetailResponse, error)

	// Update แก้ไขได้เฉพาะเจ้าของ คนอื่นได้ ErrNotFound (ไม่ใช่ permission error)
	Update(ctx context.Context, slug string, authorID uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleDetailResponse, error)

	// Delete ลบได้เฉพาะเจ้าของ cascade ไปยัง comments ทั้งหมด
	Delete(ctx context.Context, slug string, authorID uuid.UUID) error
}
