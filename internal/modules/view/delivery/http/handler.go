package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	view "github.com/rakandev/portfolio-cms/internal/modules/view/service"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/validator"
)

type ViewHandler struct {
	service view.ViewService
}

func NewViewHandler(service view.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

type trackRequest struct {
	Path string `json:"path" binding:"required,max=300"`
}

// Track records a public page view.
func (h *ViewHandler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.PublicValidationError(c, validator.FieldErrors(err))
		return
	}

	if err := h.service.TrackView(c.Request.Context(), req.Path); err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicMessage(c, http.StatusOK, "view recorded")
}

// List is the admin view of per-path counters.
func (h *ViewHandler) List(c *gin.Context) {
	views, err := h.service.GetPageViews(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, views)
}
