package project

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/project/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/project/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
)

func setupService(t *testing.T) ProjectService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Project{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewProjectService(repository.NewProjectRepository(db), nil)
}

func TestCreateProjectSlugDeduplication(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateProject(ctx, userID, dto.CreateProjectRequest{Title: "My Side Project"})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.Slug != "my-side-project" {
		t.Errorf("first slug = %q, want my-side-project", first.Slug)
	}

	second, err := svc.CreateProject(ctx, userID, dto.CreateProjectRequest{Title: "My Side Project"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Slug == first.Slug {
		t.Errorf("second slug %q should differ from first", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, "my-side-project-") {
		t.Errorf("second slug %q should carry a timestamp suffix", second.Slug)
	}
}

func TestPublishFiltering(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	userID := uuid.New()

	draft, err := svc.CreateProject(ctx, userID, dto.CreateProjectRequest{Title: "Draft"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateProject(ctx, userID, dto.CreateProjectRequest{Title: "Live", IsPublished: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	published, err := svc.GetPublishedProjects(ctx, false)
	if err != nil {
		t.Fatalf("public list failed: %v", err)
	}
	if len(published) != 1 || published[0].Title != "Live" {
		t.Fatalf("public list = %v, want only the published project", published)
	}

	// Draft detail is hidden from the public route.
	if _, err := svc.GetPublishedBySlug(ctx, draft.Slug); err == nil {
		t.Error("draft should not be visible by slug")
	}

	// Publishing makes it eligible starting with the next read.
	publishedFlag := true
	if _, err := svc.UpdateProject(ctx, draft.ID, dto.UpdateProjectRequest{IsPublished: &publishedFlag}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.GetPublishedBySlug(ctx, draft.Slug); err != nil {
		t.Errorf("published draft should now be visible: %v", err)
	}
}

func TestViewCounterMonotonicity(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, uuid.New(), dto.CreateProjectRequest{Title: "Counted", IsPublished: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	const n = 4
	var last *entity.Project
	for i := 0; i < n; i++ {
		last, err = svc.GetPublishedBySlug(ctx, created.Slug)
		if err != nil {
			t.Fatalf("fetch %d failed: %v", i+1, err)
		}
	}

	if last.Views != n {
		t.Errorf("views = %d after %d fetches, want %d", last.Views, n, n)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, uuid.New(), dto.CreateProjectRequest{
		Title:     "Original",
		ShortDesc: "short",
		Category:  "web",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newDesc := "updated description"
	updated, err := svc.UpdateProject(ctx, created.ID, dto.UpdateProjectRequest{Description: &newDesc})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Description != newDesc {
		t.Errorf("description = %q, want %q", updated.Description, newDesc)
	}
	if updated.Title != "Original" || updated.Slug != created.Slug || updated.Category != "web" {
		t.Error("untouched fields should survive a partial update")
	}

	// Title change recomputes the slug.
	newTitle := "Renamed Project"
	updated, err = svc.UpdateProject(ctx, created.ID, dto.UpdateProjectRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if updated.Slug != "renamed-project" {
		t.Errorf("slug = %q after rename, want renamed-project", updated.Slug)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetProject(context.Background(), uuid.New())
	if got := apperror.MapErrorToStatus(err); got != 404 {
		t.Errorf("missing project maps to status %d, want 404", got)
	}
}

// duplicateSlugRepo simulates the unique-index violation gorm reports when
// two concurrent creates race past the slug uniqueness check.
type duplicateSlugRepo struct {
	repository.ProjectRepository
}

func (r *duplicateSlugRepo) Create(ctx context.Context, project *entity.Project) error {
	return gorm.ErrDuplicatedKey
}

func (r *duplicateSlugRepo) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestCreateProjectDuplicateSlugConflict(t *testing.T) {
	svc := NewProjectService(&duplicateSlugRepo{}, nil)

	_, err := svc.CreateProject(context.Background(), uuid.New(), dto.CreateProjectRequest{Title: "Racy"})
	if err == nil {
		t.Fatal("expected duplicate-key create to fail")
	}
	if got := apperror.MapErrorToStatus(err); got != 409 {
		t.Errorf("duplicate slug maps to status %d, want 409", got)
	}
}
