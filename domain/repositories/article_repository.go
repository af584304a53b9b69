package repositories

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/models"
	"blog-api/domain/dto"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// GetOwned ดึง article ด้วยเงื่อนไข slug + author_id ใน query เดียว
	// ไม่เจอ = gorm.ErrRecordNotFound ไม่ว่าจะไม่มีจริงหรือไม่ใช่เจ้าของ
	GetOwned(ctx context.Context, slug string, authorID uuid.UUID) (*models.Article, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, article *models.Article) error
	ReplaceCategories(ctx context.Context, article *models.Article, categories []models.Category) error
	// DeleteOwned ลบด้วย predicate เดียวกับ GetOwned คืนจำนวน row ที่ลบ
	DeleteOwned(ctx context.Context, slug string, authorID uuid.UUID) (int64, error)
	ListWithFilters(ctx context.Context, filter *dto.ArticleFilter) ([]*models.Article, int64, error)
	// IncrementViews เพิ่ม view counter แบบ atomic (views = views + 1)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// CountComments คืน map ของ article_id -> จำนวน comment
	CountComments(ctx context.Context, articleIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
