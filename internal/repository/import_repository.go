package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/asir-flora/internal/models"
)

// ImportRepository handles database operations for import runs
type ImportRepository struct {
	db *sql.DB
}

// NewImportRepository creates a new import run repository
func NewImportRepository(db *sql.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// Create stores an import run inside tx
func (r *ImportRepository) Create(ctx context.Context, tx *sql.Tx, run models.ImportRun) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO import_runs (id, source_path, sheet, record_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.Sheet, run.RecordCount, run.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert import run: %w", err)
	}
	return nil
}

// Latest returns the most recent import run
func (r *ImportRepository) Latest(ctx context.Context) (*models.ImportRun, error) {
	var run models.ImportRun
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_path, sheet, record_count, created_at FROM import_runs
		ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&run.ID, &run.SourcePath, &run.Sheet, &run.RecordCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("import run: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest import run: %w", err)
	}
	run.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &run, nil
}
