package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

const testJWTSecret = "test-secret"

// brokenUserRepo จำลอง DB ล่มระหว่าง lookup
type brokenUserRepo struct {
	*fakeUserRepo
	lookupErr error
}

func (r *brokenUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, r.lookupErr
}

func (r *brokenUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, r.lookupErr
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates reader account", func(t *testing.T) {
		store := newMemStore()
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Role != models.RoleUser {
			t.Errorf("new accounts start as reader, got %q", user.Role)
		}
		if !user.IsActive {
			t.Error("new accounts should be active")
		}
		if user.Password == "supersecret" {
			t.Error("password must be hashed")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		store := newMemStore()
		store.addUser("alice", models.RoleUser)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice2",
			Password: "supersecret",
		})
		if !errors.Is(err, services.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken got %v", err)
		}
	})

	t.Run("propagates lookup failure", func(t *testing.T) {
		store := newMemStore()
		lookupErr := errors.New("connection refused")
		repo := &brokenUserRepo{fakeUserRepo: &fakeUserRepo{store: store}, lookupErr: lookupErr}
		svc := NewUserService(repo, nil, testJWTSecret)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "supersecret",
		})
		if !errors.Is(err, lookupErr) {
			t.Errorf("expected lookup error got %v", err)
		}
		if len(store.users) != 0 {
			t.Error("no user should be created when the lookup fails")
		}
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		store := newMemStore()
		store.addUser("alice", models.RoleUser)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "other@example.com",
			Username: "alice",
			Password: "supersecret",
		})
		if !errors.Is(err, services.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken got %v", err)
		}
	})
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()

	seed := func(active bool) *memStore {
		store := newMemStore()
		hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
		user := store.addUser("alice", models.RoleUser)
		user.Password = string(hashed)
		user.IsActive = active
		return store
	}

	t.Run("success returns token", func(t *testing.T) {
		store := seed(true)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		token, user, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "supersecret"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if token == "" {
			t.Error("expected non-empty token")
		}
		if user.Username != "alice" {
			t.Errorf("expected user alice got %q", user.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		store := seed(true)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong"})
		if !errors.Is(err, services.ErrInvalidLogin) {
			t.Errorf("expected ErrInvalidLogin got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		store := seed(true)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "supersecret"})
		if !errors.Is(err, services.ErrInvalidLogin) {
			t.Errorf("expected ErrInvalidLogin got %v", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		store := seed(false)
		svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

		_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "supersecret"})
		if !errors.Is(err, services.ErrAccountDisabled) {
			t.Errorf("expected ErrAccountDisabled got %v", err)
		}
	})
}

func TestUserLogoutWithoutTokenStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	user := &models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice", Role: models.RoleUser}
	store.users[user.ID] = user

	// Redis degraded mode: token store ไม่ได้ init
	svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

	token, err := utils.GenerateToken(user, testJWTSecret)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Errorf("Logout without token store should succeed, got %v", err)
	}

	if err := svc.Logout(ctx, "not.a.token"); !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("invalid token still rejected, got %v", err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	user := store.addUser("alice", models.RoleUser)
	svc := NewUserService(&fakeUserRepo{store: store}, nil, testJWTSecret)

	bio := "gopher"
	avatar := "https://cdn.example.com/alice.png"
	updated, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Bio: &bio, Avatar: &avatar})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Bio != bio || updated.Avatar != avatar {
		t.Errorf("profile not updated: %+v", updated)
	}

	password := "newsecret123"
	updated, err = svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Password: &password})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(password)); err != nil {
		t.Error("password should be re-hashed")
	}
}
