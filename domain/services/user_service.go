package services

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	// Logout เพิกถอน token ปัจจุบัน (เก็บ jti ใน Redis จนกว่า token จะหมดอายุ)
	Logout(ctx context.Context, tokenString string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
