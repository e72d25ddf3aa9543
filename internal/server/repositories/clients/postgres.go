package clients

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

// Columns accepted by Update. Anything else in the payload is ignored so a
// sanitized request body can never touch id or created_at.
var updatableColumns = map[string]struct{}{
	"name":      {},
	"type":      {},
	"value":     {},
	"date_from": {},
	"date_to":   {},
}

const returningColumns = `id, name, type, value::text, date_from::text, date_to::text, created_at`

// PostgresRepository implements client storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	var dateFrom, dateTo sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Value, &dateFrom, &dateTo, &c.CreatedAt); err != nil {
		return nil, err
	}
	if dateFrom.Valid {
		c.DateFrom = &dateFrom.String
	}
	if dateTo.Valid {
		c.DateTo = &dateTo.String
	}
	return &c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Client, error) {
	query := `SELECT ` + returningColumns + ` FROM clients ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, c *models.Client) (*models.Client, error) {
	query := `
		INSERT INTO clients (name, type, value, date_from, date_to)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING ` + returningColumns

	row := r.db.QueryRowContext(ctx, query, c.Name, c.Type, c.Value, c.DateFrom, c.DateTo)
	created, err := scanClient(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Client, error) {
	set, args := buildSetClause(fields)
	if len(args) == 0 {
		return nil, common.ErrEmptyUpdate
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE clients SET %s WHERE id = $%d RETURNING %s`,
		set, len(args), returningColumns)

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// buildSetClause turns a sanitized payload into a deterministic SET clause.
// Keys are sorted so the generated SQL is stable for a given payload.
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
