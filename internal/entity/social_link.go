package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Platform  string    `gorm:"size:50;not null" json:"platform"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Icon      *string   `gorm:"size:120" json:"icon,omitempty"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
