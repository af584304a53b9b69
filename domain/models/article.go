package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `gorm:"size:200;not null"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null"` // immutable หลังสร้างแล้ว
	Content   string    `gorm:"type:text;not null"`
	Thumbnail string    `gorm:"type:text;not null"` // media reference (URL)
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Views     int64     `gorm:"default:0"` // เพิ่มทุกครั้งที่เปิดดู detail
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Author     *User      `gorm:"foreignKey:AuthorID"`
	Categories []Category `gorm:"many2many:article_categories"`
	Likes      []User     `gorm:"many2many:article_likes"` // like-set (unique membership)
	Comments   []Comment  `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

func (Article) TableName() string {
	return "articles"
}
