package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/domain/models"
	"blog-api/domain/repositories"
)

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetOwned ใช้ predicate เดียว id + author_id เหมือนฝั่ง article
func (r *CommentRepositoryImpl) GetOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND author_id = ?", id, authorID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).
		Omit("Likes", "Replies").
		Save(comment).Error
}

// DeleteOwned ลบ comment พร้อมทั้ง subtree ของ replies ใน transaction เดียว
func (r *CommentRepositoryImpl) DeleteOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root models.Comment
		if err := tx.Where("id = ? AND author_id = ?", id, authorID).First(&root).Error; err != nil {
			return err
		}

		// เก็บ id ทั้ง subtree ทีละชั้น
		ids := []uuid.UUID{root.ID}
		frontier := []uuid.UUID{root.ID}
		for len(frontier) > 0 {
			var children []uuid.UUID
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		result := tx.Where("id IN ?", ids).Delete(&models.Comment{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *CommentRepositoryImpl) ListTopLevel(ctx context.Context, articleID uuid.UUID, offset, limit int) ([]*models.Comment, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ? AND parent_id IS NULL", articleID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := query.
		Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *CommentRepositoryImpl) ListReplies(ctx context.Context, parentID uuid.UUID, limit int) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ?", parentID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&replies).Error
	return replies, err
}

func (r *CommentRepositoryImpl) HasReplyByAuthor(ctx context.Context, parentID uuid.UUID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_id = ? AND author_id = ?", parentID, authorID).
		Count(&count).Error
	return count > 0, err
}
