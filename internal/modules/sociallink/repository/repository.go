package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/sociallink/dto"
)

type SocialLinkRepository interface {
	Create(ctx context.Context, link *entity.SocialLink) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	FindAll(ctx context.Context, filter dto.SocialLinkFilter) ([]*entity.SocialLink, int64, error)
	FindAllOrdered(ctx context.Context) ([]*entity.SocialLink, error)
	Update(ctx context.Context, link *entity.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type socialLinkRepository struct {
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Create(ctx context.Context, link *entity.SocialLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *socialLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	var link entity.SocialLink
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialLinkRepository) FindAll(ctx context.Context, filter dto.SocialLinkFilter) ([]*entity.SocialLink, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.SocialLink{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var links []*entity.SocialLink
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, platform ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

func (r *socialLinkRepository) FindAllOrdered(ctx context.Context) ([]*entity.SocialLink, error) {
	var links []*entity.SocialLink
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, platform ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepository) Update(ctx context.Context, link *entity.SocialLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *socialLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SocialLink{}, "id = ?", id).Error
}
