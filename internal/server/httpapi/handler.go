// Package httpapi exposes the record services as JSON resource endpoints.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/logging"
	"github.com/luisf2211/kanban-project/internal/server/services"
)

type Handler struct {
	clients  *services.ClientService
	projects *services.ProjectService
	files    *services.FileService
	log      logging.Logger
}

func New(clients *services.ClientService, projects *services.ProjectService, files *services.FileService, log logging.Logger) *Handler {
	return &Handler{clients: clients, projects: projects, files: files, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/clients", h.ListClients)
	r.POST("/clients", h.CreateClient)
	r.PATCH("/clients/:id", h.UpdateClient)
	r.DELETE("/clients/:id", h.DeleteClient)

	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	r.PATCH("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)

	r.GET("/upload", h.ListFiles)
	r.POST("/upload", h.UploadFile)
	r.DELETE("/upload/:id", h.DeleteFile)
	r.GET("/upload/:id/download", h.DownloadFile)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto the response taxonomy: validation
// failures carry their message with a 400, missing records a 404, and
// everything else is logged and surfaced as a generic 500 without detail.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		h.log.Error(c.Request.Context(), fallback, "path", c.Request.URL.Path, "err", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
