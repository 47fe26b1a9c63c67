package post

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/post/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/post/repository"
	search "github.com/rakandev/portfolio-cms/internal/modules/search/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, req dto.CreatePostRequest) (*entity.Post, error)
	GetPosts(ctx context.Context, filter dto.PostFilter) ([]*entity.Post, response.Pagination, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req dto.UpdatePostRequest) (*entity.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	GetPublishedPosts(ctx context.Context, featuredOnly bool) ([]*entity.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error)
}

type postService struct {
	repo   repository.PostRepository
	search search.SearchService
}

func NewPostService(repo repository.PostRepository, searchSvc search.SearchService) PostService {
	return &postService{repo: repo, search: searchSvc}
}

func (s *postService) CreatePost(ctx context.Context, userID uuid.UUID, req dto.CreatePostRequest) (*entity.Post, error) {
	post := &entity.Post{
		Title:       req.Title,
		Slug:        s.generateUniqueSlug(ctx, req.Title),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		Tags:        req.Tags,
		Category:    req.Category,
		Featured:    req.Featured,
		IsPublished: req.IsPublished,
		ReadTime:    estimateReadTime(req.Content),
		UserID:      userID,
	}

	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: post slug already exists", apperror.ErrConflict)
		}
		return nil, err
	}

	s.syncSearchIndex(post)
	return post, nil
}

func (s *postService) GetPosts(ctx context.Context, filter dto.PostFilter) ([]*entity.Post, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	posts, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return posts, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, id uuid.UUID, req dto.UpdatePostRequest) (*entity.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		post.Title = *req.Title
		post.Slug = s.generateUniqueSlug(ctx, *req.Title)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
		post.ReadTime = estimateReadTime(*req.Content)
	}
	if req.Thumbnail != nil {
		post.Thumbnail = req.Thumbnail
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.IsPublished != nil {
		if *req.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: post slug already exists", apperror.ErrConflict)
		}
		return nil, err
	}

	s.syncSearchIndex(post)
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPost(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.DeletePost(id.String()); err != nil {
			log.Printf("Failed to remove post %s from search index: %v", id, err)
		}
	}
	return nil
}

func (s *postService) GetPublishedPosts(ctx context.Context, featuredOnly bool) ([]*entity.Post, error) {
	return s.repo.FindPublished(ctx, featuredOnly)
}

func (s *postService) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	if !post.IsPublished {
		return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

func (s *postService) syncSearchIndex(post *entity.Post) {
	if s.search == nil {
		return
	}

	var err error
	if post.IsPublished {
		err = s.search.IndexPost(post)
	} else {
		err = s.search.DeletePost(post.ID.String())
	}
	if err != nil {
		log.Printf("Failed to sync post %s to search index: %v", post.ID, err)
	}
}
