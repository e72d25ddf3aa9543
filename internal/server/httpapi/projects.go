package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func (h *Handler) ListProjects(c *gin.Context) {
	list, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	if list == nil {
		list = []*models.Project{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var body createProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if body.Name == "" || body.Status == "" || body.Priority == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	created, err := h.projects.Create(c.Request.Context(), &models.Project{
		Name:        body.Name,
		Description: body.Description,
		Status:      kanban.Status(body.Status),
		Priority:    kanban.Priority(body.Priority),
	})
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	payload, err := decodeJSONObject(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.projects.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err, "Error updating")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Error deleting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
