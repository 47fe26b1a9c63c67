package view

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/view/repository"
)

func setupService(t *testing.T) ViewService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.PageView{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewViewService(repository.NewPageViewRepository(db), nil, 0)
}

func TestTrackViewAccumulates(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.TrackView(ctx, "/projects/my-app"); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}
	if err := svc.TrackView(ctx, "/about"); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	views, err := svc.GetPageViews(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d paths, want 2", len(views))
	}
	// Ordered by count descending.
	if views[0].Path != "/projects/my-app" || views[0].Count != 3 {
		t.Errorf("top path = %s (%d), want /projects/my-app (3)", views[0].Path, views[0].Count)
	}

	total, err := svc.TotalViews(ctx)
	if err != nil {
		t.Fatalf("total failed: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestTrackViewNormalizesPath(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if err := svc.TrackView(ctx, "about"); err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if err := svc.TrackView(ctx, " /about "); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	views, err := svc.GetPageViews(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d paths, want 1 after normalization", len(views))
	}
	if views[0].Count != 2 {
		t.Errorf("count = %d, want 2", views[0].Count)
	}
}

func TestTrackViewRejectsEmptyPath(t *testing.T) {
	svc := setupService(t)

	if err := svc.TrackView(context.Background(), "   "); err == nil {
		t.Error("blank path should be rejected")
	}
}
