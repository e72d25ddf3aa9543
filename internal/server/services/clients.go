// Package services implements the per-entity record services: payload
// sanitization, create validation, and the upload/delete/download
// orchestration between the metadata store and object storage.
package services

import (
	"context"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/models"
	"github.com/luisf2211/kanban-project/internal/server/repositories/clients"
)

type ClientService struct {
	repo clients.Repository
}

func NewClientService(repo clients.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.repo.List(ctx)
}

// Create stores a new client. There is no server-side required-field
// enforcement beyond what the form supplies; the value amount has already
// been coerced to its string form by the handler.
func (s *ClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	return s.repo.Insert(ctx, c)
}

// Update sanitizes the raw payload, coerces a numeric value field to its
// decimal-string representation, and applies the remaining fields. An empty
// sanitized payload is rejected without touching the database.
func (s *ClientService) Update(ctx context.Context, id string, payload map[string]any) (*models.Client, error) {
	cleaned := SanitizePayload(payload)
	if v, ok := cleaned["value"]; ok {
		cleaned["value"] = coerceNumericText(v)
	}
	if len(cleaned) == 0 {
		return nil, common.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, id, cleaned)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
