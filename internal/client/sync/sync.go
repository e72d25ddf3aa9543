// Package sync keeps client-side views of the dashboard collections in step
// with the server. Each controller applies edits to its local copy first,
// persists them through the API, and rolls the local copy back when the
// server rejects the change.
package sync

import (
	"context"
	"time"

	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

// Clock abstracts time retrieval so settle windows are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ClientAPI is the slice of the transport the client list controller needs.
type ClientAPI interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, fields map[string]any) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, fields map[string]any) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// ProjectAPI is the slice of the transport the board controller needs.
type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (*models.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status kanban.Status) error
	DeleteProject(ctx context.Context, id string) error
}

// FileAPI is the slice of the transport the file list controller needs.
type FileAPI interface {
	ListFiles(ctx context.Context) ([]models.File, error)
	UploadFile(ctx context.Context, filename string, content []byte, name, description string) (*models.File, error)
	DeleteFile(ctx context.Context, id string) error
	FileDownloadURL(ctx context.Context, id string) (string, error)
}
