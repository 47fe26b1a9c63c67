package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	search "github.com/rakandev/portfolio-cms/internal/modules/search/service"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type SearchHandler struct {
	service search.SearchService
}

func NewSearchHandler(service search.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search serves GET /api/public/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	if h.service == nil {
		response.PublicMessage(c, http.StatusServiceUnavailable, "search is not available")
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.PublicValidationError(c, map[string]string{"q": "q is required"})
		return
	}

	hits, err := h.service.Search(query, 20)
	if err != nil {
		response.PublicError(c, err)
		return
	}

	response.PublicOK(c, hits)
}
