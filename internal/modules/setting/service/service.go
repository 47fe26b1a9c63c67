package setting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/setting/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/setting/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

// publicKeys is the allow list of settings exposed without auth. Everything
// else stays admin-only regardless of content.
var publicKeys = []string{
	"site_title",
	"site_description",
	"seo_keywords",
	"google_analytics_id",
	"maintenance_mode",
	"theme",
}

type SettingService interface {
	GetSettings(ctx context.Context, filter dto.SettingFilter) ([]*entity.Setting, response.Pagination, error)
	GetSetting(ctx context.Context, key string) (*entity.Setting, error)
	UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*entity.Setting, error)
	DeleteSetting(ctx context.Context, key string) error
	GetPublicSettings(ctx context.Context) (map[string]any, error)
}

type settingService struct {
	repo repository.SettingRepository
}

func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) GetSettings(ctx context.Context, filter dto.SettingFilter) ([]*entity.Setting, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	settings, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return settings, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *settingService) GetSetting(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: setting not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return setting, nil
}

// UpsertSetting creates or replaces the value stored under key. The value
// must parse according to the declared type before it is accepted.
func (s *settingService) UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*entity.Setting, error) {
	settingType := req.Type
	if settingType == "" {
		settingType = entity.SettingTypeString
	}

	if err := validateValue(req.Value, settingType); err != nil {
		return nil, err
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = &entity.Setting{Key: key}
	}

	setting.Value = req.Value
	setting.Type = settingType
	if req.Description != nil {
		setting.Description = req.Description
	}

	if err := s.repo.Save(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *settingService) DeleteSetting(ctx context.Context, key string) error {
	if _, err := s.GetSetting(ctx, key); err != nil {
		return err
	}
	return s.repo.DeleteByKey(ctx, key)
}

// GetPublicSettings returns the allow-listed settings with values coerced
// to their declared type. Missing keys are simply absent.
func (s *settingService) GetPublicSettings(ctx context.Context) (map[string]any, error) {
	settings, err := s.repo.FindByKeys(ctx, publicKeys)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(settings))
	for _, setting := range settings {
		out[setting.Key] = coerceValue(setting.Value, setting.Type)
	}
	return out, nil
}

func validateValue(value, settingType string) error {
	switch settingType {
	case entity.SettingTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%w: value is not a number", apperror.ErrInvalidInput)
		}
	case entity.SettingTypeBoolean:
		if value != "true" && value != "false" {
			return fmt.Errorf("%w: value must be true or false", apperror.ErrInvalidInput)
		}
	case entity.SettingTypeJSON:
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("%w: value is not valid json", apperror.ErrInvalidInput)
		}
	}
	return nil
}

// coerceValue interprets the stored text by type. A value that no longer
// parses falls back to the raw string rather than erroring a public read.
func coerceValue(value, settingType string) any {
	switch settingType {
	case entity.SettingTypeNumber:
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n
		}
	case entity.SettingTypeBoolean:
		return value == "true"
	case entity.SettingTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(value), &v); err == nil {
			return v
		}
	}
	return value
}
