package models

import "time"

// ImportRun records one spreadsheet import into the SQLite cache
type ImportRun struct {
	ID          string    `json:"id" db:"id"` // UUID
	SourcePath  string    `json:"source_path" db:"source_path"`
	Sheet       string    `json:"sheet,omitempty" db:"sheet"`
	RecordCount int       `json:"record_count" db:"record_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
