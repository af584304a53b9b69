package dto

import (
	"time"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

// === Requests ===

type CreateCommentRequest struct {
	Content  string     `json:"content" validate:"required,min=1,max=2000"`
	ParentID *uuid.UUID `json:"parentId"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// === Responses ===

type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	ArticleID uuid.UUID         `json:"articleId"`
	ParentID  *uuid.UUID        `json:"parentId"`
	Author    *AuthorResponse   `json:"author"`
	Content   string            `json:"content"`
	LikeCount int64             `json:"likeCount"`
	IsLiked   bool              `json:"isLiked"`
	Replies   []CommentResponse `json:"replies"`
	CreatedAt time.Time         `json:"createdAt"`
}

// === Mappers ===

// CommentToResponse แปลง comment เป็น response (replies ต้องเติมจาก service)
func CommentToResponse(comment *models.Comment, likeCount int64, isLiked bool) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		ParentID:  comment.ParentID,
		Author:    UserToAuthorResponse(comment.Author),
		Content:   comment.Content,
		LikeCount: likeCount,
		IsLiked:   isLiked,
		Replies:   []CommentResponse{},
		CreatedAt: comment.CreatedAt,
	}
}
