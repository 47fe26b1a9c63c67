package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/skill/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/skill/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type SkillService interface {
	CreateSkill(ctx context.Context, userID uuid.UUID, req dto.CreateSkillRequest) (*entity.Skill, error)
	GetSkills(ctx context.Context, filter dto.SkillFilter) ([]*entity.Skill, response.Pagination, error)
	GetSkill(ctx context.Context, id uuid.UUID) (*entity.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, req dto.UpdateSkillRequest) (*entity.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	GetPublicSkills(ctx context.Context) (map[string][]*entity.Skill, error)
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) CreateSkill(ctx context.Context, userID uuid.UUID, req dto.CreateSkillRequest) (*entity.Skill, error) {
	category := req.Category
	if category == "" {
		category = entity.SkillCategoryOther
	}
	level := 50
	if req.Level != nil {
		level = *req.Level
	}

	skill := &entity.Skill{
		Name:     req.Name,
		Category: category,
		Level:    level,
		Icon:     req.Icon,
		Color:    req.Color,
		Order:    req.Order,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) GetSkills(ctx context.Context, filter dto.SkillFilter) ([]*entity.Skill, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	skills, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return skills, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *skillService) GetSkill(ctx context.Context, id uuid.UUID) (*entity.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: skill not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return skill, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, id uuid.UUID, req dto.UpdateSkillRequest) (*entity.Skill, error) {
	skill, err := s.GetSkill(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = req.Icon
	}
	if req.Color != nil {
		skill.Color = req.Color
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSkill(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// GetPublicSkills returns skills grouped by category, each group already
// in display order.
func (s *skillService) GetPublicSkills(ctx context.Context) (map[string][]*entity.Skill, error) {
	skills, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*entity.Skill)
	for _, sk := range skills {
		grouped[sk.Category] = append(grouped[sk.Category], sk)
	}
	return grouped, nil
}
