package models

// Record represents one row of the species spreadsheet
type Record struct {
	ID int64 `json:"id" db:"id"`

	// Plot coordinates
	SoilAxis      float64 `json:"soil_axis" db:"soil_axis"`           // 0: Salty, 1: Sandy, 2: Rocky, 3: Loamy
	ClimateAxis   float64 `json:"climate_axis" db:"climate_axis"`     // 1: Arid, 2: Semi-Arid, 3: Sub-Humid
	ElevationAxis float64 `json:"elevation_axis" db:"elevation_axis"` // 1: Lowland, 2: Mid-altitude, 3: Highland

	// Visual encodings
	Significance      float64 `json:"significance" db:"significance"`             // Marker color
	SignificanceCount float64 `json:"significance_count" db:"significance_count"` // Marker size
	PlantType         string  `json:"plant_type" db:"plant_type"`                 // Marker symbol

	// Tooltip payload
	Species    string `json:"species" db:"species"`
	PhotoRoute string `json:"photo_route" db:"photo_route"` // URL or path to the species photo
}

// Summary describes the loaded table
type Summary struct {
	Source             string         `json:"source"`
	RecordCount        int            `json:"record_count"`
	PlantTypes         map[string]int `json:"plant_types"`
	MinSignificance    float64        `json:"min_significance"`
	MaxSignificance    float64        `json:"max_significance"`
	MeanSignificance   float64        `json:"mean_significance"`
	MedianSignificance float64        `json:"median_significance"`
	MinCount           float64        `json:"min_significance_count"`
	MaxCount           float64        `json:"max_significance_count"`
}
