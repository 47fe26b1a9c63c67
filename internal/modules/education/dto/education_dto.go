package dto

import "time"

type CreateEducationRequest struct {
	Institution  string     `json:"institution" binding:"required,max=150"`
	Degree       string     `json:"degree" binding:"required,max=120"`
	Field        string     `json:"field" binding:"max=120"`
	Description  string     `json:"description"`
	Location     string     `json:"location" binding:"max=100"`
	GPA          *float64   `json:"gpa" binding:"omitempty,min=0,max=4"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Achievements []string   `json:"achievements"`
	Order        int        `json:"order"`
}

type UpdateEducationRequest struct {
	Institution  *string    `json:"institution" binding:"omitempty,min=1,max=150"`
	Degree       *string    `json:"degree" binding:"omitempty,min=1,max=120"`
	Field        *string    `json:"field" binding:"omitempty,max=120"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location" binding:"omitempty,max=100"`
	GPA          *float64   `json:"gpa" binding:"omitempty,min=0,max=4"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    *bool      `json:"is_current"`
	Achievements *[]string  `json:"achievements"`
	Order        *int       `json:"order"`
}

type EducationFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
