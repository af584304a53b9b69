package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/services"
)

func TestCategoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from name", func(t *testing.T) {
		store := newMemStore()
		svc := NewCategoryService(&fakeCategoryRepo{store: store})

		category, err := svc.Create(ctx, &dto.CreateCategoryRequest{Name: "Web Development"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if category.Slug != "web-development" {
			t.Errorf("expected slug %q got %q", "web-development", category.Slug)
		}
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		store := newMemStore()
		store.addCategory("Go", "go")
		svc := NewCategoryService(&fakeCategoryRepo{store: store})

		_, err := svc.Create(ctx, &dto.CreateCategoryRequest{Name: "Golang", Slug: "go"})
		if !errors.Is(err, services.ErrSlugTaken) {
			t.Errorf("expected ErrSlugTaken got %v", err)
		}
	})
}

func TestCategoryUpdateKeepsSlug(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addCategory("Go", "go")
	svc := NewCategoryService(&fakeCategoryRepo{store: store})

	newName := "Golang"
	category, err := svc.Update(ctx, "go", &dto.UpdateCategoryRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if category.Name != "Golang" {
		t.Errorf("expected name Golang got %q", category.Name)
	}
	if category.Slug != "go" {
		t.Errorf("slug must not change, got %q", category.Slug)
	}
}

func TestCategoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("protected while in use", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		category := store.addCategory("Go", "go")
		article := store.addArticle("go-basics", author.ID)
		store.catLink[article.ID] = []uuid.UUID{category.ID}

		svc := NewCategoryService(&fakeCategoryRepo{store: store})

		if err := svc.Delete(ctx, "go"); !errors.Is(err, services.ErrCategoryInUse) {
			t.Errorf("expected ErrCategoryInUse got %v", err)
		}
	})

	t.Run("deletes unused category", func(t *testing.T) {
		store := newMemStore()
		category := store.addCategory("Go", "go")
		svc := NewCategoryService(&fakeCategoryRepo{store: store})

		if err := svc.Delete(ctx, "go"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok := store.categories[category.ID]; ok {
			t.Error("category should be removed")
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		store := newMemStore()
		svc := NewCategoryService(&fakeCategoryRepo{store: store})

		if err := svc.Delete(ctx, "missing"); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("expected ErrNotFound got %v", err)
		}
	})
}
