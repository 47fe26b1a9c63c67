package education

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/education/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/education/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type EducationService interface {
	CreateEducation(ctx context.Context, userID uuid.UUID, req dto.CreateEducationRequest) (*entity.Education, error)
	GetEducations(ctx context.Context, filter dto.EducationFilter) ([]*entity.Education, response.Pagination, error)
	GetEducation(ctx context.Context, id uuid.UUID) (*entity.Education, error)
	UpdateEducation(ctx context.Context, id uuid.UUID, req dto.UpdateEducationRequest) (*entity.Education, error)
	DeleteEducation(ctx context.Context, id uuid.UUID) error
	GetPublicEducations(ctx context.Context) ([]*entity.Education, error)
}

type educationService struct {
	repo repository.EducationRepository
}

func NewEducationService(repo repository.EducationRepository) EducationService {
	return &educationService{repo: repo}
}

func (s *educationService) CreateEducation(ctx context.Context, userID uuid.UUID, req dto.CreateEducationRequest) (*entity.Education, error) {
	education := &entity.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		Field:        req.Field,
		Description:  req.Description,
		Location:     req.Location,
		GPA:          req.GPA,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Achievements: req.Achievements,
		Order:        req.Order,
		UserID:       userID,
	}

	// Still enrolled means no end date, whatever the caller sent.
	if education.IsCurrent {
		education.EndDate = nil
	}

	if err := s.repo.Create(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) GetEducations(ctx context.Context, filter dto.EducationFilter) ([]*entity.Education, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	educations, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return educations, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *educationService) GetEducation(ctx context.Context, id uuid.UUID) (*entity.Education, error) {
	education, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: education not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return education, nil
}

func (s *educationService) UpdateEducation(ctx context.Context, id uuid.UUID, req dto.UpdateEducationRequest) (*entity.Education, error) {
	education, err := s.GetEducation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Institution != nil {
		education.Institution = *req.Institution
	}
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.Field != nil {
		education.Field = *req.Field
	}
	if req.Description != nil {
		education.Description = *req.Description
	}
	if req.Location != nil {
		education.Location = *req.Location
	}
	if req.GPA != nil {
		education.GPA = req.GPA
	}
	if req.StartDate != nil {
		education.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		education.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		education.IsCurrent = *req.IsCurrent
	}

	if education.IsCurrent {
		education.EndDate = nil
	}

	if req.Achievements != nil {
		education.Achievements = *req.Achievements
	}
	if req.Order != nil {
		education.Order = *req.Order
	}

	if err := s.repo.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetEducation(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *educationService) GetPublicEducations(ctx context.Context) ([]*entity.Education, error) {
	return s.repo.FindAllOrdered(ctx)
}
