package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rakandev/portfolio-cms/internal/entity"
)

type PageViewRepository interface {
	AddViews(ctx context.Context, path string, delta int64) error
	FindAll(ctx context.Context) ([]*entity.PageView, error)
	TotalViews(ctx context.Context) (int64, error)
}

type pageViewRepository struct {
	db *gorm.DB
}

func NewPageViewRepository(db *gorm.DB) PageViewRepository {
	return &pageViewRepository{db: db}
}

// AddViews upserts the per-path counter, adding delta to an existing row.
func (r *pageViewRepository) AddViews(ctx context.Context, path string, delta int64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "path"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count": gorm.Expr("count + ?", delta),
		}),
	}).Create(&entity.PageView{Path: path, Count: delta}).Error
}

func (r *pageViewRepository) FindAll(ctx context.Context) ([]*entity.PageView, error) {
	var views []*entity.PageView
	err := r.db.WithContext(ctx).Order("count DESC").Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *pageViewRepository) TotalViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.PageView{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	return total, err
}
