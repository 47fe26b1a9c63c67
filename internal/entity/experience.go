package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentFreelance  = "FREELANCE"
	EmploymentInternship = "INTERNSHIP"
)

// Experience is a work-history entry. IsCurrent implies EndDate is nil;
// the service layer enforces this on both create and update.
type Experience struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Company      string     `gorm:"size:120;not null" json:"company"`
	Position     string     `gorm:"size:120;not null" json:"position"`
	Description  string     `gorm:"type:text" json:"description"`
	Location     string     `gorm:"size:100" json:"location"`
	Type         string     `gorm:"size:20;not null;default:FULL_TIME" json:"type"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsCurrent    bool       `gorm:"default:false" json:"is_current"`
	Technologies []string   `gorm:"serializer:json" json:"technologies"`
	Achievements []string   `gorm:"serializer:json" json:"achievements"`
	Order        int        `gorm:"column:sort_order;default:0" json:"order"`
	UserID       uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
