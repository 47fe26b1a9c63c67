package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/skill/dto"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *entity.Skill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Skill, error)
	FindAll(ctx context.Context, filter dto.SkillFilter) ([]*entity.Skill, int64, error)
	FindAllOrdered(ctx context.Context) ([]*entity.Skill, error)
	Update(ctx context.Context, skill *entity.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Skill, error) {
	var skill entity.Skill
	if err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindAll(ctx context.Context, filter dto.SkillFilter) ([]*entity.Skill, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Skill{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []*entity.Skill
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, name ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *skillRepository) FindAllOrdered(ctx context.Context) ([]*entity.Skill, error) {
	var skills []*entity.Skill
	err := r.db.WithContext(ctx).
		Order("category ASC, sort_order ASC, name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *entity.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Skill{}, "id = ?", id).Error
}
