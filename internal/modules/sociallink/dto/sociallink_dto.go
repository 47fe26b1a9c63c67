package dto

type CreateSocialLinkRequest struct {
	Platform string  `json:"platform" binding:"required,max=50"`
	URL      string  `json:"url" binding:"required,url"`
	Icon     *string `json:"icon" binding:"omitempty,max=120"`
	Order    int     `json:"order"`
}

type UpdateSocialLinkRequest struct {
	Platform *string `json:"platform" binding:"omitempty,min=1,max=50"`
	URL      *string `json:"url" binding:"omitempty,url"`
	Icon     *string `json:"icon" binding:"omitempty,max=120"`
	Order    *int    `json:"order"`
}

type SocialLinkFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
