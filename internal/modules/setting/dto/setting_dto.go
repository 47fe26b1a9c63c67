package dto

type UpsertSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	Type        string  `json:"type" binding:"omitempty,oneof=string number boolean json"`
	Description *string `json:"description" binding:"omitempty,max=300"`
}

type SettingFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
