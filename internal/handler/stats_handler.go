package handler

import (
	"net/http"

	"staffhub/internal/service"
	"staffhub/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) AdminStats(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.service.AdminStats(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *StatsHandler) EmployeeDashboard(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	dashboard, err := h.service.EmployeeDashboard(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}
