package handler

import (
	"net/http"

	"staffhub/internal/dto"
	"staffhub/internal/service"
	"staffhub/pkg/response"
	"staffhub/pkg/validator"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	project, err := h.service.Create(c.Request.Context(), requester, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectHandler) List(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.service.List(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.service.Get(c.Request.Context(), requester, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	project, err := h.service.Update(c.Request.Context(), requester, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}
