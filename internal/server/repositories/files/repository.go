// Package files persists file metadata rows. The binary payloads themselves
// live in object storage.
package files

import (
	"context"

	"github.com/luisf2211/kanban-project/internal/models"
)

type Repository interface {
	// List returns all file rows ordered by creation time, oldest first.
	List(ctx context.Context) ([]*models.File, error)
	// Insert stores a new metadata row; id and created_at are server-assigned.
	Insert(ctx context.Context, f *models.File) (*models.File, error)
	// GetByID returns the row with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.File, error)
	// Delete removes the row with the given id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id string) error
}
