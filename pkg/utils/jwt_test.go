package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blog-api/domain/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Email:    "alice@example.com",
		Username: "alice",
		Role:     models.RoleAuthor,
	}

	token, err := GenerateToken(user, "secret")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userCtx, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if userCtx.ID != user.ID {
		t.Errorf("expected id %v got %v", user.ID, userCtx.ID)
	}
	if userCtx.Username != user.Username || userCtx.Email != user.Email || userCtx.Role != user.Role {
		t.Errorf("claims mismatch: %+v", userCtx)
	}
	if userCtx.TokenID == "" {
		t.Error("expected jti to be set")
	}
	if !userCtx.CanPublish() {
		t.Error("author should be able to publish")
	}
	if time.Until(userCtx.Expiry) < 6*24*time.Hour {
		t.Errorf("expected ~7 day lifetime, expiry %v", userCtx.Expiry)
	}
}

func TestParseTokenRejects(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	token, err := GenerateToken(user, "secret")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		if _, err := ParseToken(token, "other"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := ParseToken("", "secret"); !errors.Is(err, ErrMissingToken) {
			t.Errorf("expected ErrMissingToken got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := ParseToken("not.a.token", "secret"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := JWTClaims{
			UserID:   user.ID.String(),
			Username: user.Username,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.New().String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if _, err := ParseToken(expired, "secret"); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken got %v", err)
		}
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"bearer token", "Bearer abc123", "abc123"},
		{"empty header", "", ""},
		{"missing scheme", "abc123", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"extra parts", "Bearer abc 123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.expected {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}
