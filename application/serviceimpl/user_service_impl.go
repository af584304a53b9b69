package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/infrastructure/redis"
	"blog-api/pkg/logger"
	"blog-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo   repositories.UserRepository
	tokenStore *redis.TokenStore
	jwtSecret  string
}

func NewUserService(userRepo repositories.UserRepository, tokenStore *redis.TokenStore, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		jwtSecret:  jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.ErrorContext(ctx, "Failed to check email", "error", err)
		return nil, err
	}
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already exists", "email", req.Email)
		return nil, services.ErrEmailTaken
	}

	existingUser, err = s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.ErrorContext(ctx, "Failed to check username", "error", err)
		return nil, err
	}
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, services.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashedPassword),
		Bio:      req.Bio,
		Role:     models.RoleUser,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - username not found", "username", req.Username)
		return "", nil, services.ErrInvalidLogin
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Login failed - account disabled", "user_id", user.ID)
		return "", nil, services.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - wrong password", "user_id", user.ID)
		return "", nil, services.ErrInvalidLogin
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return token, user, nil
}

// Logout เพิกถอน token ปัจจุบัน เก็บ jti ใน Redis จนกว่า token จะหมดอายุเอง
func (s *UserServiceImpl) Logout(ctx context.Context, tokenString string) error {
	userCtx, err := utils.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return err
	}

	// Redis อาจไม่ได้ init (degraded mode) token จะหมดอายุเองตาม lifetime
	if s.tokenStore == nil {
		logger.WarnContext(ctx, "Token revocation unavailable, token expires naturally", "user_id", userCtx.ID)
		return nil
	}

	ttl := time.Until(userCtx.Expiry)
	if err := s.tokenStore.RevokeToken(ctx, userCtx.TokenID, ttl); err != nil {
		logger.ErrorContext(ctx, "Failed to revoke token", "user_id", userCtx.ID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User logged out", "user_id", userCtx.ID)
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)
	return user, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	return utils.GenerateToken(user, s.jwtSecret)
}
