package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/setting/dto"
)

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)
	FindByKeys(ctx context.Context, keys []string) ([]*entity.Setting, error)
	FindAll(ctx context.Context, filter dto.SettingFilter) ([]*entity.Setting, int64, error)
	Save(ctx context.Context, setting *entity.Setting) error
	DeleteByKey(ctx context.Context, key string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	var setting entity.Setting
	if err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) FindByKeys(ctx context.Context, keys []string) ([]*entity.Setting, error) {
	var settings []*entity.Setting
	err := r.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) FindAll(ctx context.Context, filter dto.SettingFilter) ([]*entity.Setting, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Setting{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var settings []*entity.Setting
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("key ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&settings).Error
	if err != nil {
		return nil, 0, err
	}

	return settings, total, nil
}

func (r *settingRepository) Save(ctx context.Context, setting *entity.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *settingRepository) DeleteByKey(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&entity.Setting{}, "key = ?", key).Error
}
