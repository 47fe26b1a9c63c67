package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SkillCategoryFrontend = "FRONTEND"
	SkillCategoryBackend  = "BACKEND"
	SkillCategoryDatabase = "DATABASE"
	SkillCategoryDevOps   = "DEVOPS"
	SkillCategoryTools    = "TOOLS"
	SkillCategoryOther    = "OTHER"
)

type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Category  string    `gorm:"size:20;not null;default:OTHER" json:"category"`
	Level     int       `gorm:"default:50" json:"level"` // 0-100
	Icon      *string   `gorm:"size:120" json:"icon,omitempty"`
	Color     *string   `gorm:"size:30" json:"color,omitempty"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
