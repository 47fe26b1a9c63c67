package certificate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/certificate/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/certificate/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type CertificateService interface {
	CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest) (*entity.Certificate, error)
	GetCertificates(ctx context.Context, filter dto.CertificateFilter) ([]*entity.Certificate, response.Pagination, error)
	GetCertificate(ctx context.Context, id uuid.UUID) (*entity.Certificate, error)
	UpdateCertificate(ctx context.Context, id uuid.UUID, req dto.UpdateCertificateRequest) (*entity.Certificate, error)
	DeleteCertificate(ctx context.Context, id uuid.UUID) error
	GetPublicCertificates(ctx context.Context) ([]*entity.Certificate, error)
}

type certificateService struct {
	repo repository.CertificateRepository
}

func NewCertificateService(repo repository.CertificateRepository) CertificateService {
	return &certificateService{repo: repo}
}

func (s *certificateService) CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest) (*entity.Certificate, error) {
	certificate := &entity.Certificate{
		Name:          req.Name,
		Issuer:        req.Issuer,
		Description:   req.Description,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		Image:         req.Image,
		Order:         req.Order,
	}

	if err := s.repo.Create(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (s *certificateService) GetCertificates(ctx context.Context, filter dto.CertificateFilter) ([]*entity.Certificate, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	certificates, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return certificates, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *certificateService) GetCertificate(ctx context.Context, id uuid.UUID) (*entity.Certificate, error) {
	certificate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: certificate not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return certificate, nil
}

func (s *certificateService) UpdateCertificate(ctx context.Context, id uuid.UUID, req dto.UpdateCertificateRequest) (*entity.Certificate, error) {
	certificate, err := s.GetCertificate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		certificate.Name = *req.Name
	}
	if req.Issuer != nil {
		certificate.Issuer = *req.Issuer
	}
	if req.Description != nil {
		certificate.Description = *req.Description
	}
	if req.CredentialID != nil {
		certificate.CredentialID = req.CredentialID
	}
	if req.CredentialURL != nil {
		certificate.CredentialURL = req.CredentialURL
	}
	if req.IssueDate != nil {
		certificate.IssueDate = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		certificate.ExpiryDate = req.ExpiryDate
	}
	if req.Image != nil {
		certificate.Image = req.Image
	}
	if req.Order != nil {
		certificate.Order = *req.Order
	}

	if err := s.repo.Update(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (s *certificateService) DeleteCertificate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCertificate(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *certificateService) GetPublicCertificates(ctx context.Context) ([]*entity.Certificate, error) {
	return s.repo.FindAllOrdered(ctx)
}
