package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisf2211/kanban-project/internal/models"
	"github.com/luisf2211/kanban-project/internal/server/services"
)

func (h *Handler) ListFiles(c *gin.Context) {
	list, err := h.files.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	if list == nil {
		list = []*models.File{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := header.Open()
	if err != nil {
		h.respondError(c, err, "Upload failed")
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		h.respondError(c, err, "Upload failed")
		return
	}

	created, err := h.files.Upload(c.Request.Context(), services.UploadInput{
		Content:      content,
		OriginalName: header.Filename,
		DisplayName:  c.PostForm("name"),
		Description:  c.PostForm("description"),
		ContentType:  header.Header.Get("Content-Type"),
	})
	if err != nil {
		h.respondError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) DeleteFile(c *gin.Context) {
	if err := h.files.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DownloadFile(c *gin.Context) {
	url, err := h.files.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
