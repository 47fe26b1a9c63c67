package dto

import "time"

type CreateExperienceRequest struct {
	Company      string     `json:"company" binding:"required,max=120"`
	Position     string     `json:"position" binding:"required,max=120"`
	Description  string     `json:"description"`
	Location     string     `json:"location" binding:"max=100"`
	Type         string     `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Technologies []string   `json:"technologies"`
	Achievements []string   `json:"achievements"`
	Order        int        `json:"order"`
}

type UpdateExperienceRequest struct {
	Company      *string    `json:"company" binding:"omitempty,min=1,max=120"`
	Position     *string    `json:"position" binding:"omitempty,min=1,max=120"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location" binding:"omitempty,max=100"`
	Type         *string    `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    *bool      `json:"is_current"`
	Technologies *[]string  `json:"technologies"`
	Achievements *[]string  `json:"achievements"`
	Order        *int       `json:"order"`
}

type ExperienceFilter struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Type  string `form:"type"`
}
