package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/dbx"
	"github.com/luisf2211/kanban-project/internal/models"
)

var updatableColumns = map[string]struct{}{
	"name":        {},
	"description": {},
	"status":      {},
	"priority":    {},
}

const returningColumns = `id, name, COALESCE(description, ''), status, priority, created_at`

// PostgresRepository implements project storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Priority, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + returningColumns + ` FROM projects ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, p *models.Project) (*models.Project, error) {
	query := `
		INSERT INTO projects (name, description, status, priority)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + returningColumns

	row := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Status, p.Priority)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Project, error) {
	set, args := buildSetClause(fields)
	if len(args) == 0 {
		return nil, common.ErrEmptyUpdate
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE projects SET %s WHERE id = $%d RETURNING %s`,
		set, len(args), returningColumns)

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func buildSetClause(fields map[string]any) (string, []any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := updatableColumns[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	return strings.Join(parts, ", "), args
}
