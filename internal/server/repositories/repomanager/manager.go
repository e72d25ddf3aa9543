// Package repomanager aggregates the per-entity repositories behind a single
// factory so services share one database handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/luisf2211/kanban-project/internal/server/repositories/clients"
	"github.com/luisf2211/kanban-project/internal/server/repositories/files"
	"github.com/luisf2211/kanban-project/internal/server/repositories/projects"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Clients() clients.Repository
	Projects() projects.Repository
	Files() files.Repository
	Close() error
}
