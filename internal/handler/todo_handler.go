package handler

import (
	"net/http"

	"staffhub/internal/dto"
	"staffhub/internal/service"
	"staffhub/pkg/response"
	"staffhub/pkg/validator"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service service.TodoService
}

func NewTodoHandler(service service.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) Create(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	todo, err := h.service.Create(c.Request.Context(), requester, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": todo})
}

func (h *TodoHandler) List(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	todos, err := h.service.List(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (h *TodoHandler) Get(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.service.Get(c.Request.Context(), requester, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (h *TodoHandler) Update(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	todo, err := h.service.Update(c.Request.Context(), requester, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (h *TodoHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "todo deleted successfully"})
}
