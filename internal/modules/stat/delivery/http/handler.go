package handler

import (
	"github.com/gin-gonic/gin"

	stat "github.com/rakandev/portfolio-cms/internal/modules/stat/service"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

type StatHandler struct {
	service stat.StatService
}

func NewStatHandler(service stat.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}
