package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusPlanned    = "PLANNED"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusCompleted  = "COMPLETED"
	ProjectStatusArchived   = "ARCHIVED"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Slug        string    `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	ShortDesc   string    `gorm:"size:300" json:"short_desc"`
	Thumbnail   *string   `gorm:"type:text" json:"thumbnail,omitempty"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	TechStack   []string  `gorm:"serializer:json" json:"tech_stack"`
	Category    string    `gorm:"size:80" json:"category"`
	Status      string    `gorm:"size:20;not null;default:IN_PROGRESS" json:"status"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	IsPublished bool      `gorm:"default:false;index" json:"is_published"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Views       int       `gorm:"default:0" json:"views"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
