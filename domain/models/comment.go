package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ArticleID uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"` // null = top-level comment
	Content   string     `gorm:"type:text;not null"`
	CreatedAt time.Time

	// Relations
	Author  *User     `gorm:"foreignKey:AuthorID"`
	Parent  *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Replies []Comment `gorm:"foreignKey:ParentID"`
	Likes   []User    `gorm:"many2many:comment_likes"` // like-set (unique membership)
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply ตรวจสอบว่าเป็น reply หรือ top-level comment
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
