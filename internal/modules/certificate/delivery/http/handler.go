package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rakandev/portfolio-cms/internal/modules/certificate/dto"
	certificate "github.com/rakandev/portfolio-cms/internal/modules/certificate/service"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type CertificateHandler struct {
	service certificate.CertificateService
}

func NewCertificateHandler(service certificate.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

func (h *CertificateHandler) Create(c *gin.Context) {
	var req dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	created, err := h.service.CreateCertificate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

func (h *CertificateHandler) List(c *gin.Context) {
	var filter dto.CertificateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	certificates, pagination, err := h.service.GetCertificates(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, certificates, pagination)
}

func (h *CertificateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	cert, err := h.service.GetCertificate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cert)
}

func (h *CertificateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	updated, err := h.service.UpdateCertificate(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteCertificate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "certificate deleted successfully")
}

func (h *CertificateHandler) PublicList(c *gin.Context) {
	certificates, err := h.service.GetPublicCertificates(c.Request.Context())
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, certificates)
}
