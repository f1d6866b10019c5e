package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/asir-flora/internal/models"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("not found")

const recordColumns = `id, soil_axis, climate_axis, elevation_axis, significance,
	significance_count, plant_type, species, photo_route`

// RecordRepository handles database operations for species records
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ReplaceAll swaps the whole table for records inside tx.
// Record IDs are their 1-based position.
func (r *RecordRepository) ReplaceAll(ctx context.Context, tx *sql.Tx, runID string, records []models.Record) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (id, run_id, soil_axis, climate_axis,
		elevation_axis, significance, significance_count, plant_type, species, photo_route)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx, i+1, runID, rec.SoilAxis, rec.ClimateAxis,
			rec.ElevationAxis, rec.Significance, rec.SignificanceCount,
			rec.PlantType, rec.Species, rec.PhotoRoute)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i+1, err)
		}
	}
	return nil
}

// List retrieves records matching filter ordered by ID
func (r *RecordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.Record, error) {
	query := "SELECT " + recordColumns + " FROM records"

	var conditions []string
	var args []interface{}

	if filter.PlantType != "" {
		conditions = append(conditions, "plant_type = ? COLLATE NOCASE")
		args = append(args, filter.PlantType)
	}
	if filter.Species != "" {
		conditions = append(conditions, "LOWER(species) LIKE ?")
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(filter.Species))+"%")
	}
	if filter.MinSignificance != nil {
		conditions = append(conditions, "significance >= ?")
		args = append(args, *filter.MinSignificance)
	}
	if filter.MaxSignificance != nil {
		conditions = append(conditions, "significance <= ?")
		args = append(args, *filter.MaxSignificance)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID retrieves a single record
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Count returns the number of stored records
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (models.Record, error) {
	var rec models.Record
	err := s.Scan(&rec.ID, &rec.SoilAxis, &rec.ClimateAxis, &rec.ElevationAxis,
		&rec.Significance, &rec.SignificanceCount, &rec.PlantType, &rec.Species, &rec.PhotoRoute)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("failed to scan record: %w", err)
	}
	return rec, nil
}
