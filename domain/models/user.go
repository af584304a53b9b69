package models

import (
	"time"

	"github.com/google/uuid"
)

// Role ของ user ในระบบ
const (
	RoleUser   = "user"
	RoleAuthor = "author" // เขียนบทความได้
	RoleAdmin  = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	Bio       string    `gorm:"type:text"`
	Avatar    string    // media reference (URL)
	Role      string    `gorm:"default:'user'"` // user, author, admin
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// IsAdmin ตรวจสอบว่าเป็น admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublish ตรวจสอบว่าเขียนบทความได้หรือไม่ (author หรือ admin)
func (u *User) CanPublish() bool {
	return u.Role == RoleAuthor || u.Role == RoleAdmin
}
