package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Spreadsheet column headers
const (
	ColSoil              = "Soil-axis"
	ColClimate           = "Climate-axis"
	ColElevation         = "Elevation-axis"
	ColSignificance      = "Significance"
	ColSignificanceCount = "Significance count"
	ColPlantType         = "Plant Type"
	ColSpecies           = "Species"
	ColPhotoRoute        = "Photo route"
)

// RequiredColumns lists every column the table must carry
var RequiredColumns = []string{
	ColSoil,
	ColClimate,
	ColElevation,
	ColSignificance,
	ColSignificanceCount,
	ColPlantType,
	ColSpecies,
	ColPhotoRoute,
}

var (
	// ErrMissingColumn is matched by a SchemaError
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidValue reports a cell that cannot be parsed
	ErrInvalidValue = errors.New("invalid cell value")
	// ErrUnsupportedFormat reports a file extension with no reader
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	// ErrEmptyTable reports a sheet with no header row
	ErrEmptyTable = errors.New("empty table")
)

// SchemaError lists all required columns absent from a header row
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn, strings.Join(e.Missing, ", "))
}

// Is lets errors.Is match ErrMissingColumn
func (e *SchemaError) Is(target error) bool {
	return target == ErrMissingColumn
}

// CellError locates an unparseable cell. Row is the 1-based spreadsheet row.
type CellError struct {
	Row    int
	Column string
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s: row %d column %q: %q", ErrInvalidValue, e.Row, e.Column, e.Value)
}

// Is lets errors.Is match ErrInvalidValue
func (e *CellError) Is(target error) bool {
	return target == ErrInvalidValue
}

// normalizeHeader makes header matching tolerant to case, surrounding
// whitespace and a UTF-8 byte order mark.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// columnIndex maps each required column to its position in header
func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	idx := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, col := range RequiredColumns {
		i, ok := pos[normalizeHeader(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}
