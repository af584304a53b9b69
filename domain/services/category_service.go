package services

import (
	"context"

	"blog-api/domain/dto"
	"blog-api/domain/models"
)

type CategoryService interface {
	// Create สร้าง category ใหม่ derive slug จาก name ถ้าไม่ได้ส่งมา
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	// GetBySlug ดึง category ตาม slug
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)

	// Update อัปเดต name/description (slug ไม่เปลี่ยน)
	Update(ctx context.Context, slug string, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category ถ้ายังมี article อ้างอยู่คืน ErrCategoryInUse
	Delete(ctx context.Context, slug string) error

	// List ดึง categories ทั้งหมด
	List(ctx context.Context) ([]*models.Category, error)
}
