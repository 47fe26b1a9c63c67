package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/certificate/dto"
)

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entity.Certificate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Certificate, error)
	FindAll(ctx context.Context, filter dto.CertificateFilter) ([]*entity.Certificate, int64, error)
	FindAllOrdered(ctx context.Context) ([]*entity.Certificate, error)
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Certificate, error) {
	var certificate entity.Certificate
	if err := r.db.WithContext(ctx).First(&certificate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindAll(ctx context.Context, filter dto.CertificateFilter) ([]*entity.Certificate, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Certificate{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var certificates []*entity.Certificate
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("sort_order ASC, issue_date DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&certificates).Error
	if err != nil {
		return nil, 0, err
	}

	return certificates, total, nil
}

func (r *certificateRepository) FindAllOrdered(ctx context.Context) ([]*entity.Certificate, error) {
	var certificates []*entity.Certificate
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, issue_date DESC").
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Save(certificate).Error
}

func (r *certificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Certificate{}, "id = ?", id).Error
}
