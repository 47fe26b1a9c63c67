package dto

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Description string   `json:"description"`
	ShortDesc   string   `json:"short_desc" binding:"max=300"`
	Thumbnail   *string  `json:"thumbnail" binding:"omitempty,url"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
	TechStack   []string `json:"tech_stack"`
	Category    string   `json:"category" binding:"max=80"`
	Status      string   `json:"status" binding:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED ARCHIVED"`
	Featured    bool     `json:"featured"`
	IsPublished bool     `json:"is_published"`
	Order       int      `json:"order"`
}

// UpdateProjectRequest is a partial update: nil fields are left untouched.
type UpdateProjectRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=150"`
	Description *string   `json:"description"`
	ShortDesc   *string   `json:"short_desc" binding:"omitempty,max=300"`
	Thumbnail   *string   `json:"thumbnail" binding:"omitempty,url"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	TechStack   *[]string `json:"tech_stack"`
	Category    *string   `json:"category" binding:"omitempty,max=80"`
	Status      *string   `json:"status" binding:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED ARCHIVED"`
	Featured    *bool     `json:"featured"`
	IsPublished *bool     `json:"is_published"`
	Order       *int      `json:"order"`
}

// ProjectFilter is additive: empty fields are omitted from the predicate.
type ProjectFilter struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Published *bool  `form:"published"`
	Featured  *bool  `form:"featured"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	Search    string `form:"search"`
}
