package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/testimonial/dto"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	FindAll(ctx context.Context, filter dto.TestimonialFilter) ([]*entity.Testimonial, int64, error)
	FindFeatured(ctx context.Context) ([]*entity.Testimonial, error)
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	var testimonial entity.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) FindAll(ctx context.Context, filter dto.TestimonialFilter) ([]*entity.Testimonial, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Testimonial{})

	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testimonials []*entity.Testimonial
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&testimonials).Error
	if err != nil {
		return nil, 0, err
	}

	return testimonials, total, nil
}

func (r *testimonialRepository) FindFeatured(ctx context.Context) ([]*entity.Testimonial, error) {
	var testimonials []*entity.Testimonial
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Testimonial{}, "id = ?", id).Error
}
