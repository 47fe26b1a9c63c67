package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rakandev/portfolio-cms/internal/modules/experience/dto"
	experience "github.com/rakandev/portfolio-cms/internal/modules/experience/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type ExperienceHandler struct {
	service experience.ExperienceService
}

func NewExperienceHandler(service experience.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	created, err := h.service.CreateExperience(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

func (h *ExperienceHandler) List(c *gin.Context) {
	var filter dto.ExperienceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	experiences, pagination, err := h.service.GetExperiences(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, experiences, pagination)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	exp, err := h.service.GetExperience(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, exp)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateExperience(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteExperience(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "experience deleted successfully")
}

func (h *ExperienceHandler) PublicList(c *gin.Context) {
	experiences, err := h.service.GetPublicExperiences(c.Request.Context())
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, experiences)
}
