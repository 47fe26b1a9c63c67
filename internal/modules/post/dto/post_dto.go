package dto

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Excerpt     string   `json:"excerpt" binding:"max=300"`
	Content     string   `json:"content" binding:"required"`
	Thumbnail   *string  `json:"thumbnail" binding:"omitempty,url"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category" binding:"max=80"`
	Featured    bool     `json:"featured"`
	IsPublished bool     `json:"is_published"`
}

// UpdatePostRequest is a partial update: nil fields are left untouched.
type UpdatePostRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=150"`
	Excerpt     *string   `json:"excerpt" binding:"omitempty,max=300"`
	Content     *string   `json:"content"`
	Thumbnail   *string   `json:"thumbnail" binding:"omitempty,url"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category" binding:"omitempty,max=80"`
	Featured    *bool     `json:"featured"`
	IsPublished *bool     `json:"is_published"`
}

type PostFilter struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Published *bool  `form:"published"`
	Featured  *bool  `form:"featured"`
	Category  string `form:"category"`
	Tag       string `form:"tag"`
	Search    string `form:"search"`
}
