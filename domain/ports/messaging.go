package ports

import (
	"context"

	"github.com/google/uuid"
)

// BlogEvent คือ engagement event ที่ publish ขึ้น event bus
// consumer ฝั่ง notification เป็นคนแปลงเป็น notification row
type BlogEvent struct {
	Kind        string     `json:"kind"` // comment, reply, like
	ActorID     uuid.UUID  `json:"actor_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ArticleID   *uuid.UUID `json:"article_id,omitempty"`
	CommentID   *uuid.UUID `json:"comment_id,omitempty"`
	CreatedAt   int64      `json:"created_at"` // unix seconds
}

// EventPublisherPort abstraction ของ event bus (NATS JetStream)
type EventPublisherPort interface {
	Publish(ctx context.Context, event *BlogEvent) error
}
