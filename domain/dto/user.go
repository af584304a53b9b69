package dto

import (
	"time"

	"github.com/google/uuid"

	"blog-api/domain/models"
)

type UpdateProfileRequest struct {
	Bio      *string `json:"bio" validate:"omitempty,max=1000"`
	Avatar   *string `json:"avatar" validate:"omitempty,url,max=500"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorResponse ข้อมูล author แบบย่อ สำหรับฝังใน article/comment
type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
}

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UserToAuthorResponse(user *models.User) *AuthorResponse {
	if user == nil {
		return nil
	}
	return &AuthorResponse{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}
