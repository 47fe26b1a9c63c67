package testimonial

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/testimonial/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/testimonial/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, userID uuid.UUID, req dto.CreateTestimonialRequest) (*entity.Testimonial, error)
	GetTestimonials(ctx context.Context, filter dto.TestimonialFilter) ([]*entity.Testimonial, response.Pagination, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, req dto.UpdateTestimonialRequest) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	GetFeaturedTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, userID uuid.UUID, req dto.CreateTestimonialRequest) (*entity.Testimonial, error) {
	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}

	testimonial := &entity.Testimonial{
		Name:     req.Name,
		Position: req.Position,
		Company:  req.Company,
		Content:  req.Content,
		Avatar:   req.Avatar,
		Rating:   rating,
		Featured: req.Featured,
		Order:    req.Order,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) GetTestimonials(ctx context.Context, filter dto.TestimonialFilter) ([]*entity.Testimonial, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	testimonials, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return testimonials, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *testimonialService) GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: testimonial not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id uuid.UUID, req dto.UpdateTestimonialRequest) (*entity.Testimonial, error) {
	testimonial, err := s.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}
	if req.Position != nil {
		testimonial.Position = *req.Position
	}
	if req.Company != nil {
		testimonial.Company = *req.Company
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Avatar != nil {
		testimonial.Avatar = req.Avatar
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}
	if req.Order != nil {
		testimonial.Order = *req.Order
	}

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTestimonial(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *testimonialService) GetFeaturedTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	return s.repo.FindFeatured(ctx)
}
