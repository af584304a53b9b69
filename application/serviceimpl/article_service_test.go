package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/services"
	"blog-api/pkg/config"
)

func newArticleTestService(store *memStore, blogCfg config.BlogConfig) services.ArticleService {
	articleRepo := &fakeArticleRepo{store: store}
	commentRepo := &fakeCommentRepo{store: store}
	likeRepo := &fakeLikeRepo{store: store}
	commentSvc := NewCommentService(commentRepo, articleRepo, likeRepo, nil, blogCfg)
	return NewArticleService(articleRepo, &fakeCategoryRepo{store: store}, &fakeUserRepo{store: store}, likeRepo, commentSvc, blogCfg)
}

func TestArticleCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from title", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		svc := newArticleTestService(store, config.BlogConfig{})

		detail, err := svc.Create(ctx, author.ID, &dto.CreateArticleRequest{
			Title:     "Hello World",
			Content:   "first post",
			Thumbnail: "https://cdn.example.com/a.jpg",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if detail.Slug != "hello-world" {
			t.Errorf("expected slug %q got %q", "hello-world", detail.Slug)
		}
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		store.addArticle("hello-world", author.ID)
		svc := newArticleTestService(store, config.BlogConfig{})

		_, err := svc.Create(ctx, author.ID, &dto.CreateArticleRequest{
			Title:     "Hello World",
			Content:   "dup",
			Thumbnail: "https://cdn.example.com/a.jpg",
		})
		if !errors.Is(err, services.ErrSlugTaken) {
			t.Errorf("expected ErrSlugTaken got %v", err)
		}
	})

	t.Run("rejects reader account", func(t *testing.T) {
		store := newMemStore()
		reader := store.addUser("bob", models.RoleUser)
		svc := newArticleTestService(store, config.BlogConfig{})

		_, err := svc.Create(ctx, reader.ID, &dto.CreateArticleRequest{
			Title:     "Nope",
			Content:   "x",
			Thumbnail: "https://cdn.example.com/a.jpg",
		})
		if !errors.Is(err, services.ErrNotPublisher) {
			t.Errorf("expected ErrNotPublisher got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		svc := newArticleTestService(store, config.BlogConfig{})

		_, err := svc.Create(ctx, author.ID, &dto.CreateArticleRequest{
			Title:      "With Category",
			Content:    "x",
			Thumbnail:  "https://cdn.example.com/a.jpg",
			Categories: []uuid.UUID{uuid.New()},
		})
		if !errors.Is(err, services.ErrNotFound) {
			t.Errorf("expected ErrNotFound got %v", err)
		}
	})

	t.Run("single category policy", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		cat1 := store.addCategory("Go", "go")
		cat2 := store.addCategory("Web", "web")
		svc := newArticleTestService(store, config.BlogConfig{SingleCategoryPerArticle: true})

		_, err := svc.Create(ctx, author.ID, &dto.CreateArticleRequest{
			Title:      "Two Cats",
			Content:    "x",
			Thumbnail:  "https://cdn.example.com/a.jpg",
			Categories: []uuid.UUID{cat1.ID, cat2.ID},
		})
		if !errors.Is(err, services.ErrTooManyCategories) {
			t.Errorf("expected ErrTooManyCategories got %v", err)
		}

		detail, err := svc.Create(ctx, author.ID, &dto.CreateArticleRequest{
			Title:      "One Cat",
			Content:    "x",
			Thumbnail:  "https://cdn.example.com/a.jpg",
			Categories: []uuid.UUID{cat1.ID},
		})
		if err != nil {
			t.Fatalf("Create with single category failed: %v", err)
		}
		if len(detail.Categories) != 1 || detail.Categories[0].Slug != "go" {
			t.Errorf("expected category go got %+v", detail.Categories)
		}
	})
}

func TestArticleGetIncrementsViews(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	author := store.addUser("alice", models.RoleAuthor)
	store.addArticle("go-basics", author.ID)
	svc := newArticleTestService(store, config.BlogConfig{})

	first, err := svc.Get(ctx, "go-basics", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if first.Views != 1 {
		t.Errorf("expected views 1 got %d", first.Views)
	}

	second, err := svc.Get(ctx, "go-basics", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if second.Views != 2 {
		t.Errorf("expected views 2 got %d", second.Views)
	}
}

func TestArticleGetNotFound(t *testing.T) {
	store := newMemStore()
	svc := newArticleTestService(store, config.BlogConfig{})

	_, err := svc.Get(context.Background(), "missing", nil)
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound got %v", err)
	}
}

func TestArticleUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update but slug stays", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		store.addArticle("go-basics", author.ID)
		svc := newArticleTestService(store, config.BlogConfig{})

		newTitle := "Go Basics Revisited"
		detail, err := svc.Update(ctx, "go-basics", author.ID, &dto.UpdateArticleRequest{Title: &newTitle})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if detail.Title != newTitle {
			t.Errorf("expected title %q got %q", newTitle, detail.Title)
		}
		if detail.Slug != "go-basics" {
			t.Errorf("slug must not change, got %q", detail.Slug)
		}
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		store := newMemStore()
		author := store.addUser("alice", models.RoleAuthor)
		intruder := store.addUser("mallory", models.RoleAuthor)
		store.addArticle("go-basics", author.ID)
		svc := newArticleTestService(store, config.BlogConfig{})

		newTitle := "Hijacked"
		_, err := svc.Update(ctx, "go-basics", intruder.ID, &dto.UpdateArticleRequest{Title: &newTitle})
		if !errors.Is(err, services.ErrNotFound) {
			t.Errorf("expected ErrNotFound got %v", err)
		}
	})
}

func TestArticleDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	author := store.addUser("alice", models.RoleAuthor)
	intruder := store.addUser("mallory", models.RoleAuthor)
	store.addArticle("go-basics", author.ID)
	svc := newArticleTestService(store, config.BlogConfig{})

	if err := svc.Delete(ctx, "go-basics", intruder.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("non-owner delete: expected ErrNotFound got %v", err)
	}

	if err := svc.Delete(ctx, "go-basics", author.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	if err := svc.Delete(ctx, "go-basics", author.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound got %v", err)
	}
}

func TestArticleListFilters(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	author := store.addUser("alice", models.RoleAuthor)
	cat := store.addCategory("Go", "go")

	a1 := store.addArticle("go-basics", author.ID)
	a1.Title = "Go Basics"
	store.catLink[a1.ID] = []uuid.UUID{cat.ID}
	a2 := store.addArticle("rust-basics", author.ID)
	a2.Title = "Rust Basics"

	svc := newArticleTestService(store, config.BlogConfig{})

	t.Run("newest first", func(t *testing.T) {
		items, total, err := svc.List(ctx, &dto.ArticleFilter{}, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 {
			t.Errorf("expected total 2 got %d", total)
		}
		if len(items) != 2 || items[0].Slug != "rust-basics" {
			t.Errorf("expected newest first, got %+v", items)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		items, total, err := svc.List(ctx, &dto.ArticleFilter{CategorySlug: "go"}, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 || len(items) != 1 || items[0].Slug != "go-basics" {
			t.Errorf("expected only go-basics, got total=%d items=%+v", total, items)
		}
	})

	t.Run("title search", func(t *testing.T) {
		items, _, err := svc.List(ctx, &dto.ArticleFilter{Search: "rust"}, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != 1 || items[0].Slug != "rust-basics" {
			t.Errorf("expected only rust-basics, got %+v", items)
		}
	})
}
