package dto

type CreateTestimonialRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Position string  `json:"position" binding:"max=120"`
	Company  string  `json:"company" binding:"max=120"`
	Content  string  `json:"content" binding:"required"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured bool    `json:"featured"`
	Order    int     `json:"order"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Position *string `json:"position" binding:"omitempty,max=120"`
	Company  *string `json:"company" binding:"omitempty,max=120"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured *bool   `json:"featured"`
	Order    *int    `json:"order"`
}

type TestimonialFilter struct {
	Featured *bool `form:"featured"`
	Page     int   `form:"page"`
	Limit    int   `form:"limit"`
}
