package experience

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/experience/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/experience/repository"
)

func setupService(t *testing.T) ExperienceService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Experience{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewExperienceService(repository.NewExperienceRepository(db))
}

func TestCurrentPositionClearsEndDate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateExperience(ctx, uuid.New(), dto.CreateExperienceRequest{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		IsCurrent: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.EndDate != nil {
		t.Error("is_current=true should clear end_date on create")
	}
}

func TestUpdateToCurrentClearsEndDate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateExperience(ctx, uuid.New(), dto.CreateExperienceRequest{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.EndDate == nil {
		t.Fatal("past position should keep its end_date")
	}

	current := true
	updated, err := svc.UpdateExperience(ctx, created.ID, dto.UpdateExperienceRequest{IsCurrent: &current})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.EndDate != nil {
		t.Error("flipping is_current on should clear end_date")
	}

	// Supplying both in one request still resolves to no end date.
	newEnd := time.Now()
	updated, err = svc.UpdateExperience(ctx, created.ID, dto.UpdateExperienceRequest{
		IsCurrent: &current,
		EndDate:   &newEnd,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.EndDate != nil {
		t.Error("is_current=true wins over a caller-supplied end_date")
	}
}

func TestExperienceDefaultType(t *testing.T) {
	svc := setupService(t)

	created, err := svc.CreateExperience(context.Background(), uuid.New(), dto.CreateExperienceRequest{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Type != entity.EmploymentFullTime {
		t.Errorf("type = %q, want default %q", created.Type, entity.EmploymentFullTime)
	}
}
