package dto

type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Title       *string `json:"title" binding:"omitempty,max=150"`
	Bio         *string `json:"bio"`
	ShortBio    *string `json:"short_bio" binding:"omitempty,max=300"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Location    *string `json:"location" binding:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
	ResumeURL   *string `json:"resume_url" binding:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}
