package handler

import (
	"net/http"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/service"
	"staffhub/pkg/response"
	"staffhub/pkg/validator"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	service service.LeaveService
}

func NewLeaveHandler(service service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

func (h *LeaveHandler) Create(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	leave, err := h.service.Create(c.Request.Context(), requester, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"leave": dto.NewLeaveResponse(leave)})
}

func (h *LeaveHandler) List(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	leaves, err := h.service.List(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaves": toLeaveResponses(leaves)})
}

func (h *LeaveHandler) Get(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	leave, err := h.service.Get(c.Request.Context(), requester, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leave": dto.NewLeaveResponse(leave)})
}

func (h *LeaveHandler) Decide(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	leave, err := h.service.Decide(c.Request.Context(), requester, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leave": dto.NewLeaveResponse(leave)})
}

func (h *LeaveHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "leave deleted successfully"})
}

func toLeaveResponses(leaves []*model.Leave) []dto.LeaveResponse {
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, leave := range leaves {
		out = append(out, dto.NewLeaveResponse(leave))
	}
	return out
}
