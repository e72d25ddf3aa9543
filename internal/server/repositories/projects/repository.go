// Package projects persists kanban project records.
package projects

import (
	"context"

	"github.com/luisf2211/kanban-project/internal/models"
)

type Repository interface {
	// List returns all projects ordered by creation time, oldest first.
	List(ctx context.Context) ([]*models.Project, error)
	// Insert stores a new project; id and created_at are server-assigned.
	Insert(ctx context.Context, p *models.Project) (*models.Project, error)
	// Update applies the given column values to the row with the given id.
	// Returns common.ErrNotFound when no row matches.
	Update(ctx context.Context, id string, fields map[string]any) (*models.Project, error)
	// Delete removes the row with the given id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id string) error
}
