package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind ประเภทของ notification
const (
	NotificationComment = "comment" // มีคน comment บทความของเรา
	NotificationReply   = "reply"   // มีคนตอบ comment ของเรา
	NotificationLike    = "like"    // มีคน like บทความหรือ comment ของเรา
)

type Notification struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID     uuid.UUID  `gorm:"type:uuid;not null"`
	Kind        string     `gorm:"size:20;not null"` // comment, reply, like
	ArticleID   *uuid.UUID `gorm:"type:uuid"`
	CommentID   *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"default:false;index"`
	CreatedAt   time.Time

	// Relations
	Actor *User `gorm:"foreignKey:ActorID"`
}

func (Notification) TableName() string {
	return "notifications"
}
