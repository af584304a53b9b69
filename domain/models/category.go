package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `gorm:"size:100;uniqueIndex;not null"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time

	// Relations
	Articles []Article `gorm:"many2many:article_categories"`
}

func (Category) TableName() string {
	return "categories"
}
