package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blog-api/domain/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
	ErrRevokedToken = errors.New("token has been revoked")
)

const tokenLifetime = time.Hour * 24 * 7

type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserContext ข้อมูล user ที่ resolve จาก token เก็บใน fiber locals
type UserContext struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     string
	TokenID  string // jti สำหรับ revocation
	Expiry   time.Time
}

// CanPublish ตรวจสอบว่าเขียนบทความได้ (author หรือ admin)
func (u *UserContext) CanPublish() bool {
	return u.Role == models.RoleAuthor || u.Role == models.RoleAdmin
}

// GenerateToken ออก HS256 token อายุ 7 วัน พร้อม jti สำหรับ revocation
func GenerateToken(user *models.User, jwtSecret string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseToken ตรวจ signature และคืน UserContext
func ParseToken(tokenString, jwtSecret string) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	return &UserContext{
		ID:       userID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
		TokenID:  claims.ID,
		Expiry:   expiry,
	}, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// GetUserFromContext ดึง UserContext ที่ middleware ใส่ไว้ใน locals
func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user := c.Locals("user")
	if user == nil {
		return nil, errors.New("user not found in context")
	}

	userCtx, ok := user.(*UserContext)
	if !ok {
		return nil, errors.New("invalid user context type")
	}

	return userCtx, nil
}

// OptionalUserID คืน user id ถ้า request มี token (nil สำหรับ anonymous)
func OptionalUserID(c *fiber.Ctx) *uuid.UUID {
	userCtx, err := GetUserFromContext(c)
	if err != nil {
		return nil
	}
	id := userCtx.ID
	return &id
}
