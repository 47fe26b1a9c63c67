package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/experience/dto"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	FindAll(ctx context.Context, filter dto.ExperienceFilter) ([]*entity.Experience, int64, error)
	FindAllOrdered(ctx context.Context) ([]*entity.Experience, error)
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	var experience entity.Experience
	if err := r.db.WithContext(ctx).First(&experience, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) FindAll(ctx context.Context, filter dto.ExperienceFilter) ([]*entity.Experience, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Experience{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var experiences []*entity.Experience
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, start_date DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&experiences).Error
	if err != nil {
		return nil, 0, err
	}

	return experiences, total, nil
}

func (r *experienceRepository) FindAllOrdered(ctx context.Context) ([]*entity.Experience, error) {
	var experiences []*entity.Experience
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, start_date DESC").
		Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Experience{}, "id = ?", id).Error
}
