package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rakandev/portfolio-cms/internal/modules/education/dto"
	education "github.com/rakandev/portfolio-cms/internal/modules/education/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type EducationHandler struct {
	service education.EducationService
}

func NewEducationHandler(service education.EducationService) *EducationHandler {
	return &EducationHandler{service: service}
}

func (h *EducationHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	created, err := h.service.CreateEducation(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

func (h *EducationHandler) List(c *gin.Context) {
	var filter dto.EducationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	educations, pagination, err := h.service.GetEducations(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, educations, pagination)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	edu, err := h.service.GetEducation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, edu)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateEducation(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteEducation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "education deleted successfully")
}

func (h *EducationHandler) PublicList(c *gin.Context) {
	educations, err := h.service.GetPublicEducations(c.Request.Context())
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, educations)
}
