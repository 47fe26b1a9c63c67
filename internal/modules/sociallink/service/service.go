package sociallink

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/sociallink/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/sociallink/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type SocialLinkService interface {
	CreateSocialLink(ctx context.Context, userID uuid.UUID, req dto.CreateSocialLinkRequest) (*entity.SocialLink, error)
	GetSocialLinks(ctx context.Context, filter dto.SocialLinkFilter) ([]*entity.SocialLink, response.Pagination, error)
	GetSocialLink(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	UpdateSocialLink(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (*entity.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uuid.UUID) error
	GetPublicSocialLinks(ctx context.Context) ([]*entity.SocialLink, error)
}

type socialLinkService struct {
	repo repository.SocialLinkRepository
}

func NewSocialLinkService(repo repository.SocialLinkRepository) SocialLinkService {
	return &socialLinkService{repo: repo}
}

func (s *socialLinkService) CreateSocialLink(ctx context.Context, userID uuid.UUID, req dto.CreateSocialLinkRequest) (*entity.SocialLink, error) {
	link := &entity.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialLinkService) GetSocialLinks(ctx context.Context, filter dto.SocialLinkFilter) ([]*entity.SocialLink, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	links, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return links, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *socialLinkService) GetSocialLink(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: social link not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return link, nil
}

func (s *socialLinkService) UpdateSocialLink(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (*entity.SocialLink, error) {
	link, err := s.GetSocialLink(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Platform != nil {
		link.Platform = *req.Platform
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = req.Icon
	}
	if req.Order != nil {
		link.Order = *req.Order
	}

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialLinkService) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSocialLink(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *socialLinkService) GetPublicSocialLinks(ctx context.Context) ([]*entity.SocialLink, error) {
	return s.repo.FindAllOrdered(ctx)
}
