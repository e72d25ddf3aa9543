package projects

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var projectColumns = []string{"id", "name", "description", "status", "priority", "created_at"}

func TestList_OrderedByCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT id, name, COALESCE\(description, ''\), status, priority, created_at FROM projects ORDER BY created_at`)

	now := time.Now()
	rows := sqlmock.NewRows(projectColumns).
		AddRow("p1", "Sitio web", "Rediseño", "todo", "high", now).
		AddRow("p2", "API", "", "done", "low", now.Add(time.Minute))

	mock.ExpectQuery(q.String()).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].Status != kanban.StatusTodo || got[0].Priority != kanban.PriorityHigh {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Description != "" {
		t.Fatalf("want empty description, got %q", got[1].Description)
	}
}

func TestInsert_ReturnsCreatedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO projects \(name, description, status, priority\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING`)

	rows := sqlmock.NewRows(projectColumns).
		AddRow("p1", "Sitio web", "Rediseño", "todo", "high", time.Now())

	mock.ExpectQuery(q.String()).
		WithArgs("Sitio web", "Rediseño", "todo", "high").
		WillReturnRows(rows)

	got, err := repo.Insert(context.Background(), &models.Project{
		Name:        "Sitio web",
		Description: "Rediseño",
		Status:      kanban.StatusTodo,
		Priority:    kanban.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "p1" || got.Status != kanban.StatusTodo {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestUpdate_StatusOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE projects SET status = \$1 WHERE id = \$2 RETURNING`)

	rows := sqlmock.NewRows(projectColumns).
		AddRow("p1", "Sitio web", "Rediseño", "done", "high", time.Now())

	mock.ExpectQuery(q.String()).
		WithArgs("done", "p1").
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), "p1", map[string]any{"status": "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != kanban.StatusDone {
		t.Fatalf("want status done, got %q", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_EmptyPayload(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), "p1", map[string]any{})
	if !errors.Is(err, common.ErrEmptyUpdate) {
		t.Fatalf("want ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE projects SET status = \$1 WHERE id = \$2`).
		WithArgs("done", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "missing", map[string]any{"status": "done"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_IdempotentOnMissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
