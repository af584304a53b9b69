package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/repositories"
	"blog-api/pkg/utils"
)

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) repositories.ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *ArticleRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Where("id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetOwned ใช้ predicate เดียว slug + author_id
// จึงแยกไม่ออกระหว่าง "ไม่มีอยู่จริง" กับ "ไม่ใช่ของเรา" (ตั้งใจให้เป็นแบบนั้น)
func (r *ArticleRepositoryImpl) GetOwned(ctx context.Context, slug string, authorID uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Where("slug = ? AND author_id = ?", slug, authorID).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).
		Omit("Categories", "Likes", "Comments").
		Save(article).Error
}

func (r *ArticleRepositoryImpl) ReplaceCategories(ctx context.Context, article *models.Article, categories []models.Category) error {
	return r.db.WithContext(ctx).
		Model(article).
		Association("Categories").
		Replace(categories)
}

func (r *ArticleRepositoryImpl) DeleteOwned(ctx context.Context, slug string, authorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("slug = ? AND author_id = ?", slug, authorID).
		Delete(&models.Article{})
	return result.RowsAffected, result.Error
}

func (r *ArticleRepositoryImpl) ListWithFilters(ctx context.Context, filter *dto.ArticleFilter) ([]*models.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Article{})

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN article_categories ac ON ac.article_id = articles.id").
			Joins("JOIN categories c ON c.id = ac.category_id").
			Where("c.slug = ?", filter.CategorySlug)
	}

	if filter.Search != "" {
		query = query.Where("articles.title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit, offset := utils.NormalizePagination(filter.Page, filter.Limit)

	var articles []*models.Article
	err := query.
		Preload("Author").
		Preload("Categories").
		Order("articles.created_at DESC, articles.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *ArticleRepositoryImpl) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *ArticleRepositoryImpl) CountComments(ctx context.Context, articleIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ArticleID uuid.UUID
		Total     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("article_id, COUNT(*) AS total").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.ArticleID] = rw.Total
	}
	return counts, nil
}
