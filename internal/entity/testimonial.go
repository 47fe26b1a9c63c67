package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Position  string    `gorm:"size:120" json:"position"`
	Company   string    `gorm:"size:120" json:"company"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Avatar    *string   `gorm:"type:text" json:"avatar,omitempty"`
	Rating    int       `gorm:"default:5" json:"rating"` // 1-5
	Featured  bool      `gorm:"default:false" json:"featured"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
