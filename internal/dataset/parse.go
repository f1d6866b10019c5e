package dataset

import (
	"strconv"
	"strings"

	"github.com/jengzang/asir-flora/internal/models"
)

// ParseTable converts a header row and data rows into records. Blank rows
// are skipped; record IDs are assigned later by the Provider.
func ParseTable(header []string, rows [][]string) ([]models.Record, error) {
	if len(header) == 0 {
		return nil, ErrEmptyTable
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		// Data rows start right after the header row
		r := rowReader{row: row, idx: idx, line: i + 2}

		rec := models.Record{
			SoilAxis:          r.number(ColSoil),
			ClimateAxis:       r.number(ColClimate),
			ElevationAxis:     r.number(ColElevation),
			Significance:      r.number(ColSignificance),
			SignificanceCount: r.number(ColSignificanceCount),
			PlantType:         r.text(ColPlantType),
			Species:           r.text(ColSpecies),
			PhotoRoute:        r.text(ColPhotoRoute),
		}
		if r.err != nil {
			return nil, r.err
		}
		records = append(records, rec)
	}
	return records, nil
}

type rowReader struct {
	row  []string
	idx  map[string]int
	line int
	err  error
}

func (r *rowReader) cell(col string) string {
	i := r.idx[col]
	if i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) text(col string) string {
	return r.cell(col)
}

func (r *rowReader) number(col string) float64 {
	if r.err != nil {
		return 0
	}
	raw := r.cell(col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.err = &CellError{Row: r.line, Column: col, Value: raw}
		return 0
	}
	return v
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
