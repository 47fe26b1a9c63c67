package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Institution  string     `gorm:"size:150;not null" json:"institution"`
	Degree       string     `gorm:"size:120;not null" json:"degree"`
	Field        string     `gorm:"size:120" json:"field"`
	Description  string     `gorm:"type:text" json:"description"`
	Location     string     `gorm:"size:100" json:"location"`
	GPA          *float64   `json:"gpa,omitempty"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsCurrent    bool       `gorm:"default:false" json:"is_current"`
	Achievements []string   `gorm:"serializer:json" json:"achievements"`
	Order        int        `gorm:"column:sort_order;default:0" json:"order"`
	UserID       uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
