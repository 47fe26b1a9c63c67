package post

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/post/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/post/repository"
)

func setupService(t *testing.T) PostService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Post{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewPostService(repository.NewPostRepository(db), nil)
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short", "a few words only", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"just over one minute", strings.Repeat("word ", 201), 2},
		{"three minutes", strings.Repeat("word ", 550), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateReadTime(tt.content); got != tt.want {
				t.Errorf("estimateReadTime = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreatePostSetsComputedFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, uuid.New(), dto.CreatePostRequest{
		Title:       "Hello, Blog!",
		Content:     strings.Repeat("word ", 450),
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if post.Slug != "hello-blog" {
		t.Errorf("slug = %q, want hello-blog", post.Slug)
	}
	if post.ReadTime != 3 {
		t.Errorf("read time = %d, want 3", post.ReadTime)
	}
	if post.PublishedAt == nil {
		t.Error("published post should carry a published_at timestamp")
	}
}

func TestDraftPostHasNoPublishedAt(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, uuid.New(), dto.CreatePostRequest{
		Title:   "Draft",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.PublishedAt != nil {
		t.Error("draft should not carry published_at")
	}

	// Publishing stamps it.
	published := true
	updated, err := svc.UpdatePost(ctx, post.ID, dto.UpdatePostRequest{IsPublished: &published})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Error("publishing should set published_at")
	}
}

func TestPostViewCounter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, uuid.New(), dto.CreatePostRequest{
		Title:       "Counted",
		Content:     "body",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.GetPublishedBySlug(ctx, created.Slug); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
	}

	got, err := svc.GetPost(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Views != 3 {
		t.Errorf("views = %d, want 3", got.Views)
	}
}

func TestPostTagFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.CreatePost(ctx, userID, dto.CreatePostRequest{
		Title: "Go post", Content: "x", Tags: []string{"go", "backend"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreatePost(ctx, userID, dto.CreatePostRequest{
		Title: "Rust post", Content: "x", Tags: []string{"rust"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	posts, _, err := svc.GetPosts(ctx, dto.PostFilter{Tag: "go"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Go post" {
		t.Errorf("tag filter returned %d posts, want the single go post", len(posts))
	}
}
