package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/profile/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/profile/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*entity.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile upserts the singleton record: the first update creates it.
func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*entity.Profile, error) {
	profile, err := s.repo.First(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &entity.Profile{IsAvailable: true}
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ShortBio != nil {
		profile.ShortBio = *req.ShortBio
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if profile.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidInput)
	}

	if profile.ID == uuid.Nil {
		if err := s.repo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
