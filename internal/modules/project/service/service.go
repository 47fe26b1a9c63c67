package project

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/project/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/project/repository"
	search "github.com/rakandev/portfolio-cms/internal/modules/search/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, req dto.CreateProjectRequest) (*entity.Project, error)
	GetProjects(ctx context.Context, filter dto.ProjectFilter) ([]*entity.Project, response.Pagination, error)
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*entity.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// Public projections: published records only.
	GetPublishedProjects(ctx context.Context, featuredOnly bool) ([]*entity.Project, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Project, error)
}

type projectService struct {
	repo   repository.ProjectRepository
	search search.SearchService
}

func NewProjectService(repo repository.ProjectRepository, searchSvc search.SearchService) ProjectService {
	return &projectService{repo: repo, search: searchSvc}
}

func (s *projectService) CreateProject(ctx context.Context, userID uuid.UUID, req dto.CreateProjectRequest) (*entity.Project, error) {
	status := req.Status
	if status == "" {
		status = entity.ProjectStatusInProgress
	}

	project := &entity.Project{
		Title:       req.Title,
		Slug:        generateUniqueSlug(ctx, s.repo.FindBySlug, req.Title),
		Description: req.Description,
		ShortDesc:   req.ShortDesc,
		Thumbnail:   req.Thumbnail,
		Images:      req.Images,
		TechStack:   req.TechStack,
		Category:    req.Category,
		Status:      status,
		Featured:    req.Featured,
		IsPublished: req.IsPublished,
		Order:       req.Order,
		UserID:      userID,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: project slug already exists", apperror.ErrConflict)
		}
		return nil, err
	}

	s.syncSearchIndex(project)
	return project, nil
}

func (s *projectService) GetProjects(ctx context.Context, filter dto.ProjectFilter) ([]*entity.Project, response.Pagination, error) {
	normalizePage(&filter.Page, &filter.Limit)

	projects, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return projects, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != project.Title {
		project.Title = *req.Title
		project.Slug = generateUniqueSlug(ctx, s.repo.FindBySlug, *req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDesc != nil {
		project.ShortDesc = *req.ShortDesc
	}
	if req.Thumbnail != nil {
		project.Thumbnail = req.Thumbnail
	}
	if req.Images != nil {
		project.Images = *req.Images
	}
	if req.TechStack != nil {
		project.TechStack = *req.TechStack
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := s.repo.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: project slug already exists", apperror.ErrConflict)
		}
		return nil, err
	}

	s.syncSearchIndex(project)
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.DeleteProject(id.String()); err != nil {
			log.Printf("Failed to remove project %s from search index: %v", id, err)
		}
	}
	return nil
}

func (s *projectService) GetPublishedProjects(ctx context.Context, featuredOnly bool) ([]*entity.Project, error) {
	return s.repo.FindPublished(ctx, featuredOnly)
}

func (s *projectService) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	if !project.IsPublished {
		return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
	}

	if err := s.repo.IncrementViews(ctx, project.ID); err != nil {
		return nil, err
	}
	project.Views++

	return project, nil
}

// syncSearchIndex keeps the search mirror consistent with the publish flag.
// Indexing failures are logged, not surfaced; search lags, CRUD succeeds.
func (s *projectService) syncSearchIndex(project *entity.Project) {
	if s.search == nil {
		return
	}

	var err error
	if project.IsPublished {
		err = s.search.IndexProject(project)
	} else {
		err = s.search.DeleteProject(project.ID.String())
	}
	if err != nil {
		log.Printf("Failed to sync project %s to search index: %v", project.ID, err)
	}
}
