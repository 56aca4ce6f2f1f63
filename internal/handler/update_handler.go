package handler

import (
	"net/http"

	"staffhub/internal/dto"
	"staffhub/internal/service"
	"staffhub/pkg/response"
	"staffhub/pkg/validator"

	"github.com/gin-gonic/gin"
)

type DailyUpdateHandler struct {
	service service.DailyUpdateService
}

func NewDailyUpdateHandler(service service.DailyUpdateService) *DailyUpdateHandler {
	return &DailyUpdateHandler{service: service}
}

func (h *DailyUpdateHandler) Create(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateDailyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	update, err := h.service.Create(c.Request.Context(), requester, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"daily_update": update})
}

func (h *DailyUpdateHandler) List(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	updates, err := h.service.List(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_updates": updates})
}

func (h *DailyUpdateHandler) Get(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	update, err := h.service.Get(c.Request.Context(), requester, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_update": update})
}

func (h *DailyUpdateHandler) Update(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateDailyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	update, err := h.service.Update(c.Request.Context(), requester, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_update": update})
}

func (h *DailyUpdateHandler) Delete(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requester, id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daily update deleted successfully"})
}
