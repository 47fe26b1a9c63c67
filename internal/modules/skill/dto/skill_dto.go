package dto

type CreateSkillRequest struct {
	Name     string  `json:"name" binding:"required,max=80"`
	Category string  `json:"category" binding:"omitempty,oneof=FRONTEND BACKEND DATABASE DEVOPS TOOLS OTHER"`
	Level    *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Icon     *string `json:"icon" binding:"omitempty,max=120"`
	Color    *string `json:"color" binding:"omitempty,max=30"`
	Order    int     `json:"order"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=80"`
	Category *string `json:"category" binding:"omitempty,oneof=FRONTEND BACKEND DATABASE DEVOPS TOOLS OTHER"`
	Level    *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Icon     *string `json:"icon" binding:"omitempty,max=120"`
	Color    *string `json:"color" binding:"omitempty,max=30"`
	Order    *int    `json:"order"`
}

type SkillFilter struct {
	Category string `form:"category"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
