package serviceimpl

import (
	"context"
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	}

	// slug ต้อง unique ชนแล้ว reject ไม่ generate ใหม่ให้
	existing, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err == nil && existing != nil {
		return nil, services.ErrSlugTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "slug", category.Slug)
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

// Update แก้ไข name/description ได้ slug คงที่หลังสร้าง
func (s *CategoryServiceImpl) Update(ctx context.Context, categorySlug string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "slug", categorySlug, "error", err)
		return nil, err
	}

	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, categorySlug string) error {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrNotFound
		}
		return err
	}

	count, err := s.categoryRepo.CountArticles(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return services.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "slug", categorySlug, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", category.ID, "slug", categorySlug)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}
