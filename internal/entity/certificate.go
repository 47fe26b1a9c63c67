package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Issuer        string     `gorm:"size:120;not null" json:"issuer"`
	Description   string     `gorm:"type:text" json:"description"`
	CredentialID  *string    `gorm:"size:120" json:"credential_id,omitempty"`
	CredentialURL *string    `gorm:"type:text" json:"credential_url,omitempty"`
	IssueDate     time.Time  `gorm:"not null" json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	Image         *string    `gorm:"type:text" json:"image,omitempty"`
	Order         int        `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
