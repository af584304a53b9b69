package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/pkg/config"
	"blog-api/pkg/logger"
)

// จำนวน top-level comments สูงสุดที่ embed ใน article detail
const detailCommentLimit = 50

type ArticleServiceImpl struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
	likeRepo     repositories.LikeRepository
	commentSvc   services.CommentService
	blogCfg      config.BlogConfig
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	commentSvc services.CommentService,
	blogCfg config.BlogConfig,
) services.ArticleService {
	return &ArticleServiceImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		commentSvc:   commentSvc,
		blogCfg:      blogCfg,
	}
}

func (s *ArticleServiceImpl) List(ctx context.Context, filter *dto.ArticleFilter, viewerID *uuid.UUID) ([]dto.ArticleListItem, int64, error) {
	articles, total, err := s.articleRepo.ListWithFilters(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list articles", "error", err)
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(articles))
	for i, article := range articles {
		ids[i] = article.ID
	}

	likeCounts, err := s.likeRepo.Counts(ctx, repositories.LikeTargetArticle, ids)
	if err != nil {
		return nil, 0, err
	}

	likedSet := map[uuid.UUID]bool{}
	if viewerID != nil {
		likedSet, err = s.likeRepo.LikedBy(ctx, repositories.LikeTargetArticle, ids, *viewerID)
		if err != nil {
			return nil, 0, err
		}
	}

	commentCounts, err := s.articleRepo.CountComments(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ArticleListItem, len(articles))
	for i, article := range articles {
		items[i] = *dto.ArticleToListItem(article, likeCounts[article.ID], likedSet[article.ID], commentCounts[article.ID])
	}

	return items, total, nil
}

// Get เพิ่ม view counter ทุกครั้งที่เรียก ไม่ dedupe ต่อ viewer
func (s *ArticleServiceImpl) Get(ctx context.Context, articleSlug string, viewerID *uuid.UUID) (*dto.ArticleDetailResponse, error) {
	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	if err := s.articleRepo.IncrementViews(ctx, article.ID); err != nil {
		logger.WarnContext(ctx, "Failed to increment views", "article_id", article.ID, "error", err)
	} else {
		article.Views++
	}

	return s.buildDetail(ctx, article, viewerID)
}

func (s *ArticleServiceImpl) Create(ctx context.Context, authorID uuid.UUID, req *dto.CreateArticleRequest) (*dto.ArticleDetailResponse, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, services.ErrNotFound
	}
	if !author.CanPublish() {
		return nil, services.ErrNotPublisher
	}

	articleSlug := req.Slug
	if articleSlug == "" {
		articleSlug = slug.Make(req.Title)
	}

	// slug ชนแล้ว reject ให้ client ตั้งเอง ไม่ต่อ suffix ให้
	exists, err := s.articleRepo.ExistsBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, services.ErrSlugTaken
	}

	categories, err := s.resolveCategories(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:      req.Title,
		Slug:       articleSlug,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		AuthorID:   authorID,
		Categories: categories,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		logger.ErrorContext(ctx, "Failed to create article", "slug", articleSlug, "error", err)
		return nil, err
	}

	article.Author = author

	logger.InfoContext(ctx, "Article created", "article_id", article.ID, "slug", article.Slug, "author_id", authorID)

	return s.buildDetail(ctx, article, &authorID)
}

// Update แก้ไขได้เฉพาะเจ้าของ คนอื่นได้ ErrNotFound เสมอ (ไม่บอกว่าบทความมีอยู่)
func (s *ArticleServiceImpl) Update(ctx context.Context, articleSlug string, authorID uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleDetailResponse, error) {
	article, err := s.articleRepo.GetOwned(ctx, articleSlug, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		// title เปลี่ยนได้ แต่ slug คงเดิม
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Thumbnail != nil {
		article.Thumbnail = *req.Thumbnail
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		logger.ErrorContext(ctx, "Failed to update article", "slug", articleSlug, "error", err)
		return nil, err
	}

	if req.Categories != nil {
		categories, err := s.resolveCategories(ctx, *req.Categories)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceCategories(ctx, article, categories); err != nil {
			logger.ErrorContext(ctx, "Failed to replace categories", "slug", articleSlug, "error", err)
			return nil, err
		}
		article.Categories = categories
	}

	logger.InfoContext(ctx, "Article updated", "article_id", article.ID, "slug", article.Slug)

	return s.buildDetail(ctx, article, &authorID)
}

func (s *ArticleServiceImpl) Delete(ctx context.Context, articleSlug string, authorID uuid.UUID) error {
	rows, err := s.articleRepo.DeleteOwned(ctx, articleSlug, authorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return services.ErrNotFound
	}

	logger.InfoContext(ctx, "Article deleted", "slug", articleSlug, "author_id", authorID)
	return nil
}

// resolveCategories ตรวจว่า category ids มีอยู่จริงทุกตัว
func (s *ArticleServiceImpl) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	if s.blogCfg.SingleCategoryPerArticle && len(ids) > 1 {
		return nil, services.ErrTooManyCategories
	}

	categories, err := s.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, services.ErrNotFound
	}

	return categories, nil
}

func (s *ArticleServiceImpl) buildDetail(ctx context.Context, article *models.Article, viewerID *uuid.UUID) (*dto.ArticleDetailResponse, error) {
	ids := []uuid.UUID{article.ID}

	likeCounts, err := s.likeRepo.Counts(ctx, repositories.LikeTargetArticle, ids)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if viewerID != nil {
		likedSet, err := s.likeRepo.LikedBy(ctx, repositories.LikeTargetArticle, ids, *viewerID)
		if err != nil {
			return nil, err
		}
		isLiked = likedSet[article.ID]
	}

	comments, _, err := s.commentSvc.ListTopLevel(ctx, article.Slug, 1, detailCommentLimit, viewerID)
	if err != nil {
		return nil, err
	}

	return dto.ArticleToDetailResponse(article, likeCounts[article.ID], isLiked, comments), nil
}
