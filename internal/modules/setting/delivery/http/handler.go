package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rakandev/portfolio-cms/internal/modules/setting/dto"
	setting "github.com/rakandev/portfolio-cms/internal/modules/setting/service"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type SettingHandler struct {
	service setting.SettingService
}

func NewSettingHandler(service setting.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

func (h *SettingHandler) List(c *gin.Context) {
	var filter dto.SettingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	settings, pagination, err := h.service.GetSettings(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, settings, pagination)
}

func (h *SettingHandler) Get(c *gin.Context) {
	s, err := h.service.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, s)
}

func (h *SettingHandler) Upsert(c *gin.Context) {
	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	saved, err := h.service.UpsertSetting(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, saved)
}

func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSetting(c.Request.Context(), c.Param("key")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "setting deleted successfully")
}

func (h *SettingHandler) PublicList(c *gin.Context) {
	settings, err := h.service.GetPublicSettings(c.Request.Context())
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, settings)
}
