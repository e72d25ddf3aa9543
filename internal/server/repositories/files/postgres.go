package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/dbx"
	"github.com/luisf2211/kanban-project/internal/models"
)

const returningColumns = `id, name, COALESCE(description, ''), file_type, storage_url, storage_key, created_at`

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFile(row interface{ Scan(...any) error }) (*models.File, error) {
	var f models.File
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.FileType, &f.StorageURL, &f.StorageKey, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.File, error) {
	query := `SELECT ` + returningColumns + ` FROM files ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, f *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (name, description, file_type, storage_url, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returningColumns

	row := r.db.QueryRowContext(ctx, query, f.Name, f.Description, f.FileType, f.StorageURL, f.StorageKey)
	created, err := scanFile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert file: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := `SELECT ` + returningColumns + ` FROM files WHERE id = $1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
