package dto

import (
	"time"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Actor     *AuthorResponse `json:"actor"`
	ArticleID *uuid.UUID      `json:"articleId"`
	CommentID *uuid.UUID      `json:"commentId"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NotificationToResponse(n *models.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		Actor:     UserToAuthorResponse(n.Actor),
		ArticleID: n.ArticleID,
		CommentID: n.CommentID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationsToResponses(notifications []*models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = *NotificationToResponse(n)
	}
	return responses
}
