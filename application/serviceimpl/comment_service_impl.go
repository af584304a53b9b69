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
	"blog-api/pkg/config"
	"blog-api/pkg/logger"
)

const (
	// จำนวน replies ที่แสดงต่อ comment เสมอ
	replyLimit = 10
	// ความลึกสูงสุดของ thread (top-level = 1)
	maxThreadDepth = 5
)

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	likeRepo    repositories.LikeRepository
	publisher   ports.EventPublisherPort
	blogCfg     config.BlogConfig
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	likeRepo repositories.LikeRepository,
	publisher ports.EventPublisherPort,
	blogCfg config.BlogConfig,
) services.CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
		publisher:   publisher,
		blogCfg:     blogCfg,
	}
}

func (s *CommentServiceImpl) ListTopLevel(ctx context.Context, articleSlug string, page, limit int, viewerID *uuid.UUID) ([]dto.CommentResponse, int64, error) {
	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, services.ErrNotFound
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	comments, total, err := s.commentRepo.ListTopLevel(ctx, article.ID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.buildResponses(ctx, comments, viewerID, 1)
	if err != nil {
		return nil, 0, err
	}

	return responses, total, nil
}

// GetReplies ดึง direct replies ใหม่สุดก่อน จำกัด replyLimit เสมอ ไม่มี pagination
func (s *CommentServiceImpl) GetReplies(ctx context.Context, commentID uuid.UUID, viewerID *uuid.UUID) ([]dto.CommentResponse, error) {
	parent, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	replies, err := s.commentRepo.ListReplies(ctx, parent.ID, replyLimit)
	if err != nil {
		return nil, err
	}

	return s.buildResponses(ctx, replies, viewerID, commentDepth(ctx, s.commentRepo, parent)+1)
}

func (s *CommentServiceImpl) Create(ctx context.Context, articleSlug string, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	var parent *models.Comment
	if req.ParentID != nil {
		parent, err = s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, services.ErrNotFound
			}
			return nil, err
		}

		// parent ต้องอยู่บทความเดียวกัน ข้ามบทความถือว่าไม่มี parent นั้น
		if parent.ArticleID != article.ID {
			return nil, services.ErrNotFound
		}

		if commentDepth(ctx, s.commentRepo, parent) >= maxThreadDepth {
			return nil, services.ErrThreadTooDeep
		}

		if s.blogCfg.RestrictDuplicateReplies {
			replied, err := s.commentRepo.HasReplyByAuthor(ctx, parent.ID, authorID)
			if err != nil {
				return nil, err
			}
			if replied {
				return nil, services.ErrDuplicateReply
			}
		}
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		ParentID:  req.ParentID,
		Content:   req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to create comment", "article_id", article.ID, "error", err)
		return nil, err
	}

	// reload พร้อม author สำหรับ response
	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	s.publishCommentEvent(ctx, article, parent, created)

	logger.InfoContext(ctx, "Comment created", "comment_id", created.ID, "article_id", article.ID)

	return dto.CommentToResponse(created, 0, false), nil
}

func (s *CommentServiceImpl) Update(ctx context.Context, commentID uuid.UUID, authorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetOwned(ctx, commentID, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to update comment", "comment_id", commentID, "error", err)
		return nil, err
	}

	likeCounts, err := s.likeRepo.Counts(ctx, repositories.LikeTargetComment, []uuid.UUID{comment.ID})
	if err != nil {
		return nil, err
	}

	likedSet, err := s.likeRepo.LikedBy(ctx, repositories.LikeTargetComment, []uuid.UUID{comment.ID}, authorID)
	if err != nil {
		return nil, err
	}

	return dto.CommentToResponse(comment, likeCounts[comment.ID], likedSet[comment.ID]), nil
}

func (s *CommentServiceImpl) Delete(ctx context.Context, commentID uuid.UUID, authorID uuid.UUID) error {
	_, err := s.commentRepo.DeleteOwned(ctx, commentID, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrNotFound
		}
		return err
	}

	logger.InfoContext(ctx, "Comment deleted", "comment_id", commentID, "author_id", authorID)
	return nil
}

// buildResponses เติม like counts และ reply tree ลงใน comments ชุดเดียวกัน
func (s *CommentServiceImpl) buildResponses(ctx context.Context, comments []*models.Comment, viewerID *uuid.UUID, depth int) ([]dto.CommentResponse, error) {
	if len(comments) == 0 {
		return []dto.CommentResponse{}, nil
	}

	ids := make([]uuid.UUID, len(comments))
	for i, comment := range comments {
		ids[i] = comment.ID
	}

	likeCounts, err := s.likeRepo.Counts(ctx, repositories.LikeTargetComment, ids)
	if err != nil {
		return nil, err
	}

	likedSet := map[uuid.UUID]bool{}
	if viewerID != nil {
		likedSet, err = s.likeRepo.LikedBy(ctx, repositories.LikeTargetComment, ids, *viewerID)
		if err != nil {
			return nil, err
		}
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		resp := dto.CommentToResponse(comment, likeCounts[comment.ID], likedSet[comment.ID])

		if depth < maxThreadDepth {
			replies, err := s.commentRepo.ListReplies(ctx, comment.ID, replyLimit)
			if err != nil {
				return nil, err
			}
			nested, err := s.buildResponses(ctx, replies, viewerID, depth+1)
			if err != nil {
				return nil, err
			}
			resp.Replies = nested
		}

		responses[i] = *resp
	}

	return responses, nil
}

// commentDepth นับความลึกของ comment โดยไต่ parent chain ขึ้นไป (top-level = 1)
func commentDepth(ctx context.Context, repo repositories.CommentRepository, comment *models.Comment) int {
	depth := 1
	current := comment
	for current.ParentID != nil {
		parent, err := repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			break
		}
		depth++
		current = parent
		if depth >= maxThreadDepth {
			break
		}
	}
	return depth
}

// publishCommentEvent ส่ง event ขึ้น bus ไม่แจ้งตัวเอง และไม่ทำให้ request ล้มถ้า publish พลาด
func (s *CommentServiceImpl) publishCommentEvent(ctx context.Context, article *models.Article, parent, comment *models.Comment) {
	if s.publisher == nil {
		return
	}

	kind := models.NotificationComment
	recipientID := article.AuthorID
	if parent != nil {
		kind = models.NotificationReply
		recipientID = parent.AuthorID
	}

	if recipientID == comment.AuthorID {
		return
	}

	articleID := article.ID
	commentID := comment.ID
	event := &ports.BlogEvent{
		Kind:        kind,
		ActorID:     comment.AuthorID,
		RecipientID: recipientID,
		ArticleID:   &articleID,
		CommentID:   &commentID,
		CreatedAt:   time.Now().Unix(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish comment event", "kind", kind, "error", err)
	}
}
