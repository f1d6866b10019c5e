package models

// RecordFilter represents filter parameters for querying records
type RecordFilter struct {
	PlantType       string   `form:"plant_type"`
	Species         string   `form:"species"` // Case-insensitive substring
	MinSignificance *float64 `form:"min_significance"`
	MaxSignificance *float64 `form:"max_significance"`
	Limit           int      `form:"limit"` // Max records to return, 0 for all
}
