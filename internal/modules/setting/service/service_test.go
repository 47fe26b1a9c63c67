package setting

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/setting/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/setting/repository"
)

func setupService(t *testing.T) SettingService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Setting{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewSettingService(repository.NewSettingRepository(db))
}

func TestUpsertSettingCreatesAndReplaces(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.UpsertSetting(ctx, "site_title", dto.UpsertSettingRequest{Value: "My Portfolio"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if created.Type != entity.SettingTypeString {
		t.Errorf("type = %q, want default string", created.Type)
	}

	updated, err := svc.UpsertSetting(ctx, "site_title", dto.UpsertSettingRequest{Value: "Renamed"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("upsert should reuse the existing row")
	}
	if updated.Value != "Renamed" {
		t.Errorf("value = %q, want Renamed", updated.Value)
	}
}

func TestUpsertSettingRejectsInvalidValues(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
		typ   string
	}{
		{"not a number", "abc", entity.SettingTypeNumber},
		{"not a boolean", "yes", entity.SettingTypeBoolean},
		{"not json", "{broken", entity.SettingTypeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertSetting(ctx, "k", dto.UpsertSettingRequest{Value: tt.value, Type: tt.typ})
			if err == nil {
				t.Errorf("value %q should be rejected for type %s", tt.value, tt.typ)
			}
		})
	}
}

func TestGetPublicSettingsCoercesTypes(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seed := []struct {
		key   string
		value string
		typ   string
	}{
		{"site_title", "My Portfolio", entity.SettingTypeString},
		{"maintenance_mode", "true", entity.SettingTypeBoolean},
		{"theme", `{"primary":"#222"}`, entity.SettingTypeJSON},
		{"smtp_password", "secret", entity.SettingTypeString},
	}
	for _, s := range seed {
		if _, err := svc.UpsertSetting(ctx, s.key, dto.UpsertSettingRequest{Value: s.value, Type: s.typ}); err != nil {
			t.Fatalf("seed %s failed: %v", s.key, err)
		}
	}

	public, err := svc.GetPublicSettings(ctx)
	if err != nil {
		t.Fatalf("public settings failed: %v", err)
	}

	if public["site_title"] != "My Portfolio" {
		t.Errorf("site_title = %v", public["site_title"])
	}
	if public["maintenance_mode"] != true {
		t.Errorf("maintenance_mode = %v, want coerced bool", public["maintenance_mode"])
	}
	theme, ok := public["theme"].(map[string]any)
	if !ok {
		t.Fatalf("theme = %T, want decoded json object", public["theme"])
	}
	if theme["primary"] != "#222" {
		t.Errorf("theme.primary = %v", theme["primary"])
	}
	if _, leaked := public["smtp_password"]; leaked {
		t.Error("non-allow-listed key must not appear in public settings")
	}
}

func TestDeleteSettingUnknownKey(t *testing.T) {
	svc := setupService(t)

	if err := svc.DeleteSetting(context.Background(), "missing"); err == nil {
		t.Error("deleting an unknown key should fail")
	}
}
