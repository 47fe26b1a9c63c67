package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rakandev/portfolio-cms/internal/modules/profile/dto"
	profile "github.com/rakandev/portfolio-cms/internal/modules/profile/service"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type ProfileHandler struct {
	service profile.ProfileService
}

func NewProfileHandler(service profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

func (h *ProfileHandler) PublicGet(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, p)
}
