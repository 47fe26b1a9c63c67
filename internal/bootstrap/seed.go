package bootstrap

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/config"
	"github.com/rakandev/portfolio-cms/internal/entity"
	userrepo "github.com/rakandev/portfolio-cms/internal/modules/user/repository"
)

// Seed makes a fresh database usable: it creates the admin account from
// ADMIN_EMAIL/ADMIN_PASSWORD and the default public settings. Existing
// rows are left alone, so running it on every boot is safe.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(ctx, db, cfg); err != nil {
		return err
	}
	return seedSettings(ctx, db)
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	users := userrepo.NewUserRepository(db)

	count, err := users.CountByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.User{
		Email:        cfg.AdminEmail,
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Printf("seeded admin account %s", cfg.AdminEmail)
	return nil
}

func seedSettings(ctx context.Context, db *gorm.DB) error {
	defaults := []entity.Setting{
		{Key: "site_title", Value: "Portfolio", Type: entity.SettingTypeString},
		{Key: "site_description", Value: "Personal portfolio and blog", Type: entity.SettingTypeString},
		{Key: "maintenance_mode", Value: "false", Type: entity.SettingTypeBoolean},
	}

	for _, setting := range defaults {
		var count int64
		if err := db.WithContext(ctx).Model(&entity.Setting{}).
			Where("key = ?", setting.Key).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check setting %s: %w", setting.Key, err)
		}
		if count > 0 {
			continue
		}
		s := setting
		if err := db.WithContext(ctx).Create(&s).Error; err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", setting.Key, err)
		}
	}

	return nil
}
