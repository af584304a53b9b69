package repositories

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
	// CountArticles คืนจำนวนบทความที่อ้างถึง category (สำหรับ protect-on-delete)
	CountArticles(ctx context.Context, id uuid.UUID) (int64, error)
}
