package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/asir-flora/internal/database"
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/repository"
)

// ErrNoImport is returned when the SQLite cache holds no imported records
var ErrNoImport = errors.New("no records imported")

// ImportService copies a spreadsheet into the SQLite cache
type ImportService struct {
	db      *sql.DB
	records *repository.RecordRepository
	runs    *repository.ImportRepository
	now     func() time.Time
}

// NewImportService creates a new import service
func NewImportService(db *sql.DB) *ImportService {
	return &ImportService{
		db:      db,
		records: repository.NewRecordRepository(db),
		runs:    repository.NewImportRepository(db),
		now:     time.Now,
	}
}

// Import loads path, then replaces the stored table and records the run in
// one transaction
func (s *ImportService) Import(ctx context.Context, path string, opts dataset.LoadOptions) (models.ImportRun, error) {
	records, err := dataset.Load(path, opts)
	if err != nil {
		return models.ImportRun{}, err
	}

	run := models.ImportRun{
		ID:          uuid.NewString(),
		SourcePath:  path,
		Sheet:       opts.Sheet,
		RecordCount: len(records),
		CreatedAt:   s.now().UTC().Truncate(time.Second),
	}
	err = database.Transaction(s.db, func(tx *sql.Tx) error {
		if err := s.records.ReplaceAll(ctx, tx, run.ID, records); err != nil {
			return err
		}
		return s.runs.Create(ctx, tx, run)
	})
	if err != nil {
		return models.ImportRun{}, fmt.Errorf("import %s: %w", path, err)
	}

	log.Printf("Imported %d records from %s (run %s)", run.RecordCount, path, run.ID)
	return run, nil
}

// LoadProvider builds the in-memory table from the SQLite cache. A cache
// with no import run or no records is an error.
func LoadProvider(ctx context.Context, db *sql.DB, source string) (*dataset.Provider, error) {
	records := repository.NewRecordRepository(db)
	runs := repository.NewImportRepository(db)

	run, err := runs.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", source, ErrNoImport)
	}
	if err != nil {
		return nil, err
	}

	n, err := records.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoImport)
	}

	recs, err := records.List(ctx, models.RecordFilter{})
	if err != nil {
		return nil, err
	}
	log.Printf("Using import run %s from %s (%s)", run.ID, run.SourcePath, run.CreatedAt.Format(time.RFC3339))
	return dataset.NewProvider(recs, source), nil
}
