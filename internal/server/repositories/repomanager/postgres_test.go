package repomanager

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/luisf2211/kanban-project/internal/server/repositories/clients"
	"github.com/luisf2211/kanban-project/internal/server/repositories/files"
	"github.com/luisf2211/kanban-project/internal/server/repositories/projects"
)

func TestAccessors_ReturnConcreteRepos(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		clients:  clients.NewPostgresRepository(db),
		projects: projects.NewPostgresRepository(db),
		files:    files.NewPostgresRepository(db),
	}
	var _ RepositoryManager = m

	if m.Conn() != db {
		t.Fatal("Conn() did not return the underlying db")
	}
	if m.Clients() == nil {
		t.Fatal("Clients() nil")
	}
	if m.Projects() == nil {
		t.Fatal("Projects() nil")
	}
	if m.Files() == nil {
		t.Fatal("Files() nil")
	}

	mock.ExpectClose()
	if err := m.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
