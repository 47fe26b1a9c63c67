package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email,max=100"`
	Subject *string `json:"subject" binding:"omitempty,max=200"`
	Content string  `json:"content" binding:"required,max=5000"`
}

type UpdateMessageRequest struct {
	IsRead     *bool `json:"is_read"`
	IsStarred  *bool `json:"is_starred"`
	IsArchived *bool `json:"is_archived"`
	Replied    *bool `json:"replied"`
}

type MessageFilter struct {
	IsRead     *bool `form:"is_read"`
	IsStarred  *bool `form:"is_starred"`
	IsArchived *bool `form:"is_archived"`
	Page       int   `form:"page"`
	Limit      int   `form:"limit"`
}

// CreatedMessageResponse is the public projection returned after a
// contact-form submission. Flags and content stay private.
type CreatedMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
