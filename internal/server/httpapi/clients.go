package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisf2211/kanban-project/internal/models"
)

type createClientRequest struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Value    json.Number `json:"value"`
	DateFrom *string     `json:"date_from"`
	DateTo   *string     `json:"date_to"`
}

func (h *Handler) ListClients(c *gin.Context) {
	list, err := h.clients.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	if list == nil {
		list = []*models.Client{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var body createClientRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.clients.Create(c.Request.Context(), &models.Client{
		Name:     body.Name,
		Type:     body.Type,
		Value:    body.Value.String(),
		DateFrom: emptyToNil(body.DateFrom),
		DateTo:   emptyToNil(body.DateTo),
	})
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	payload, err := decodeJSONObject(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.clients.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	if err := h.clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado"})
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
