package experience

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/experience/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/experience/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type ExperienceService interface {
	CreateExperience(ctx context.Context, userID uuid.UUID, req dto.CreateExperienceRequest) (*entity.Experience, error)
	GetExperiences(ctx context.Context, filter dto.ExperienceFilter) ([]*entity.Experience, response.Pagination, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, req dto.UpdateExperienceRequest) (*entity.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	GetPublicExperiences(ctx context.Context) ([]*entity.Experience, error)
}

type experienceService struct {
	repo repository.ExperienceRepository
}

func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) CreateExperience(ctx context.Context, userID uuid.UUID, req dto.CreateExperienceRequest) (*entity.Experience, error) {
	empType := req.Type
	if empType == "" {
		empType = entity.EmploymentFullTime
	}

	experience := &entity.Experience{
		Company:      req.Company,
		Position:     req.Position,
		Description:  req.Description,
		Location:     req.Location,
		Type:         empType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Technologies: req.Technologies,
		Achievements: req.Achievements,
		Order:        req.Order,
		UserID:       userID,
	}

	// A current position has no end date, whatever the caller sent.
	if experience.IsCurrent {
		experience.EndDate = nil
	}

	if err := s.repo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) GetExperiences(ctx context.Context, filter dto.ExperienceFilter) ([]*entity.Experience, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	experiences, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return experiences, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *experienceService) GetExperience(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: experience not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) UpdateExperience(ctx context.Context, id uuid.UUID, req dto.UpdateExperienceRequest) (*entity.Experience, error) {
	experience, err := s.GetExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Position != nil {
		experience.Position = *req.Position
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.Type != nil {
		experience.Type = *req.Type
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}

	// Enforced on update too, so is_current and end_date can never
	// coexist regardless of which request set them.
	if experience.IsCurrent {
		experience.EndDate = nil
	}

	if req.Technologies != nil {
		experience.Technologies = *req.Technologies
	}
	if req.Achievements != nil {
		experience.Achievements = *req.Achievements
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	if err := s.repo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetExperience(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *experienceService) GetPublicExperiences(ctx context.Context) ([]*entity.Experience, error) {
	return s.repo.FindAllOrdered(ctx)
}
