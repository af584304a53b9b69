package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/ports"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/pkg/logger"
)

type EngagementServiceImpl struct {
	likeRepo    repositories.LikeRepository
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	publisher   ports.EventPublisherPort
}

func NewEngagementService(
	likeRepo repositories.LikeRepository,
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	publisher ports.EventPublisherPort,
) services.EngagementService {
	return &EngagementServiceImpl{
		likeRepo:    likeRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

// Toggle สลับสถานะ like กดซ้ำสองครั้งกลับมาที่เดิมเสมอ
func (s *EngagementServiceImpl) Toggle(ctx context.Context, target repositories.LikeTarget, targetID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, error) {
	recipientID, articleID, commentID, err := s.resolveTarget(ctx, target, targetID)
	if err != nil {
		return nil, err
	}

	liked, likeCount, err := s.likeRepo.Toggle(ctx, target, targetID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to toggle like", "target", target, "target_id", targetID, "error", err)
		return nil, err
	}

	// แจ้งเฉพาะตอนเพิ่ม like ไม่แจ้งตอนเอาออก และไม่แจ้งตัวเอง
	if liked && recipientID != userID && s.publisher != nil {
		event := &ports.BlogEvent{
			Kind:        models.NotificationLike,
			ActorID:     userID,
			RecipientID: recipientID,
			ArticleID:   articleID,
			CommentID:   commentID,
			CreatedAt:   time.Now().Unix(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish like event", "target", target, "error", err)
		}
	}

	return &dto.LikeResponse{
		Liked:     liked,
		LikeCount: likeCount,
	}, nil
}

func (s *EngagementServiceImpl) ToggleArticleBySlug(ctx context.Context, slug string, userID uuid.UUID) (*dto.LikeResponse, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return s.Toggle(ctx, repositories.LikeTargetArticle, article.ID, userID)
}

// resolveTarget ตรวจว่า target มีอยู่จริงและหาเจ้าของสำหรับ notification
func (s *EngagementServiceImpl) resolveTarget(ctx context.Context, target repositories.LikeTarget, targetID uuid.UUID) (uuid.UUID, *uuid.UUID, *uuid.UUID, error) {
	switch target {
	case repositories.LikeTargetArticle:
		article, err := s.articleRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, nil, services.ErrNotFound
			}
			return uuid.Nil, nil, nil, err
		}
		id := article.ID
		return article.AuthorID, &id, nil, nil
	case repositories.LikeTargetComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, nil, services.ErrNotFound
			}
			return uuid.Nil, nil, nil, err
		}
		articleID := comment.ArticleID
		commentID := comment.ID
		return comment.AuthorID, &articleID, &commentID, nil
	default:
		return uuid.Nil, nil, nil, services.ErrNotFound
	}
}
