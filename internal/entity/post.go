package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Slug        string     `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Excerpt     string     `gorm:"size:300" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Thumbnail   *string    `gorm:"type:text" json:"thumbnail,omitempty"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	Category    string     `gorm:"size:80" json:"category"`
	Featured    bool       `gorm:"default:false" json:"featured"`
	IsPublished bool       `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ReadTime    int        `gorm:"default:1" json:"read_time"`
	Views       int        `gorm:"default:0" json:"views"`
	UserID      uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User        User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
