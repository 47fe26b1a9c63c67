package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the portfolio owner's public identity. There is one per
// deployment; reads take the first record.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Title       string    `gorm:"size:150" json:"title"`
	Bio         string    `gorm:"type:text" json:"bio"`
	ShortBio    string    `gorm:"size:300" json:"short_bio"`
	Email       string    `gorm:"size:100" json:"email"`
	Location    string    `gorm:"size:100" json:"location"`
	AvatarURL   *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	ResumeURL   *string   `gorm:"type:text" json:"resume_url,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
