package dto

import (
	"time"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

// ความยาว excerpt ใน list view
const excerptLength = 150

// === Requests ===

type CreateArticleRequest struct {
	Title      string      `json:"title" validate:"required,min=1,max=200"`
	Slug       string      `json:"slug" validate:"omitempty,min=1,max=200"`
	Content    string      `json:"content" validate:"required,min=1"`
	Thumbnail  string      `json:"thumbnail" validate:"required,max=500"`
	Categories []uuid.UUID `json:"categories" validate:"omitempty,dive,required"`
}

type UpdateArticleRequest struct {
	Title      *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Content    *string      `json:"content" validate:"omitempty,min=1"`
	Thumbnail  *string      `json:"thumbnail" validate:"omitempty,max=500"`
	Categories *[]uuid.UUID `json:"categories" validate:"omitempty,dive,required"`
}

// ArticleFilter เงื่อนไขสำหรับ list articles (AND-combined)
type ArticleFilter struct {
	CategorySlug string `query:"category"`
	Search       string `query:"q"`
	Page         int    `query:"page"`
	Limit        int    `query:"limit"`
}

// === Responses ===

type ArticleListItem struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Author       *AuthorResponse    `json:"author"`
	Categories   []CategoryResponse `json:"categories"`
	Thumbnail    string             `json:"thumbnail"`
	Excerpt      string             `json:"excerpt"`
	Views        int64              `json:"views"`
	LikeCount    int64              `json:"likeCount"`
	IsLiked      bool               `json:"isLiked"`
	CommentCount int64              `json:"commentCount"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type ArticleDetailResponse struct {
	ID         uuid.UUID          `json:"id"`
	Title      string             `json:"title"`
	Slug       string             `json:"slug"`
	Author     *AuthorResponse    `json:"author"`
	Categories []CategoryResponse `json:"categories"`
	Thumbnail  string             `json:"thumbnail"`
	Content    string             `json:"content"`
	Views      int64              `json:"views"`
	LikeCount  int64              `json:"likeCount"`
	IsLiked    bool               `json:"isLiked"`
	Comments   []CommentResponse  `json:"comments"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// === Mappers ===

func articleCategories(article *models.Article) []CategoryResponse {
	responses := make([]CategoryResponse, len(article.Categories))
	for i := range article.Categories {
		responses[i] = *CategoryToCategoryResponse(&article.Categories[i])
	}
	return responses
}

// Excerpt ตัด content เหลือ 150 ตัวอักษรสำหรับ list view
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

func ArticleToListItem(article *models.Article, likeCount int64, isLiked bool, commentCount int64) *ArticleListItem {
	if article == nil {
		return nil
	}
	return &ArticleListItem{
		ID:           article.ID,
		Title:        article.Title,
		Slug:         article.Slug,
		Author:       UserToAuthorResponse(article.Author),
		Categories:   articleCategories(article),
		Thumbnail:    article.Thumbnail,
		Excerpt:      Excerpt(article.Content),
		Views:        article.Views,
		LikeCount:    likeCount,
		IsLiked:      isLiked,
		CommentCount: commentCount,
		CreatedAt:    article.CreatedAt,
	}
}

func ArticleToDetailResponse(article *models.Article, likeCount int64, isLiked bool, comments []CommentResponse) *ArticleDetailResponse {
	if article == nil {
		return nil
	}
	if comments == nil {
		comments = []CommentResponse{}
	}
	return &ArticleDetailResponse{
		ID:         article.ID,
		Title:      article.Title,
		Slug:       article.Slug,
		Author:     UserToAuthorResponse(article.Author),
		Categories: articleCategories(article),
		Thumbnail:  article.Thumbnail,
		Content:    article.Content,
		Views:      article.Views,
		LikeCount:  likeCount,
		IsLiked:    isLiked,
		Comments:   comments,
		CreatedAt:  article.CreatedAt,
		UpdatedAt:  article.UpdatedAt,
	}
}
