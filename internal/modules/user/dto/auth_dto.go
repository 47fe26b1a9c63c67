package dto

import "github.com/rakandev/portfolio-cms/internal/entity"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Optional post-login redirect target. Anything that is not a
	// root-relative path is replaced with "/".
	Redirect string `json:"redirect"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *entity.User `json:"user"`
	RedirectTo  string       `json:"redirect_to"`
}

type UpdateAccountRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}
