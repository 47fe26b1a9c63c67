package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageView aggregates public page-view counts per path. Increments are
// buffered in redis and flushed by the view sync worker.
type PageView struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Path      string    `gorm:"size:300;uniqueIndex;not null" json:"path"`
	Count     int64     `gorm:"default:0" json:"count"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *PageView) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
