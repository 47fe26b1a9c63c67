package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/education/dto"
)

type EducationRepository interface {
	Create(ctx context.Context, education *entity.Education) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Education, error)
	FindAll(ctx context.Context, filter dto.EducationFilter) ([]*entity.Education, int64, error)
	FindAllOrdered(ctx context.Context) ([]*entity.Education, error)
	Update(ctx context.Context, education *entity.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type educationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(ctx context.Context, education *entity.Education) error {
	return r.db.WithContext(ctx).Create(education).Error
}

func (r *educationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Education, error) {
	var education entity.Education
	if err := r.db.WithContext(ctx).First(&education, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *educationRepository) FindAll(ctx context.Context, filter dto.EducationFilter) ([]*entity.Education, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Education{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var educations []*entity.Education
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, start_date DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&educations).Error
	if err != nil {
		return nil, 0, err
	}

	return educations, total, nil
}

func (r *educationRepository) FindAllOrdered(ctx context.Context) ([]*entity.Education, error) {
	var educations []*entity.Education
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, start_date DESC").
		Find(&educations).Error
	if err != nil {
		return nil, err
	}
	return educations, nil
}

func (r *educationRepository) Update(ctx context.Context, education *entity.Education) error {
	return r.db.WithContext(ctx).Save(education).Error
}

func (r *educationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Education{}, "id = ?", id).Error
}
