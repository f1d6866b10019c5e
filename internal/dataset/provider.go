// Package dataset loads the species spreadsheet and serves it as a
// read-only in-memory table.
package dataset

import (
	"strings"

	"github.com/golang/geo/r3"

	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/spatial"
	"github.com/jengzang/asir-flora/internal/stats"
)

// Provider is the immutable table of records. It is safe for concurrent use.
type Provider struct {
	records []models.Record
	byID    map[int64]int
	index   *spatial.Index
	source  string
}

// NewProvider copies records into a new Provider. Records without an ID get
// their 1-based position.
func NewProvider(records []models.Record, source string) *Provider {
	p := &Provider{
		records: make([]models.Record, len(records)),
		byID:    make(map[int64]int, len(records)),
		source:  source,
	}
	points := make([]r3.Vector, len(records))
	for i, r := range records {
		if r.ID == 0 {
			r.ID = int64(i + 1)
		}
		p.records[i] = r
		p.byID[r.ID] = i
		points[i] = r3.Vector{X: r.SoilAxis, Y: r.ClimateAxis, Z: r.ElevationAxis}
	}
	p.index = spatial.NewIndex(points)
	return p
}

// Source describes where the records came from
func (p *Provider) Source() string {
	return p.source
}

// Len returns the number of records
func (p *Provider) Len() int {
	return len(p.records)
}

// Get returns the record with the given ID
func (p *Provider) Get(id int64) (models.Record, bool) {
	i, ok := p.byID[id]
	if !ok {
		return models.Record{}, false
	}
	return p.records[i], true
}

// PlantTypes returns the distinct plant types in ascending order
func (p *Provider) PlantTypes() []string {
	keys := make([]string, len(p.records))
	for i, r := range p.records {
		keys[i] = r.PlantType
	}
	return stats.SortedKeys(stats.CountBy(keys))
}

// ByPlantType groups records by plant type, keeping load order in each group
func (p *Provider) ByPlantType() map[string][]models.Record {
	groups := make(map[string][]models.Record)
	for _, r := range p.records {
		groups[r.PlantType] = append(groups[r.PlantType], r)
	}
	return groups
}

// Filter returns the records matching f in load order
func (p *Provider) Filter(f models.RecordFilter) []models.Record {
	species := strings.ToLower(strings.TrimSpace(f.Species))
	var out []models.Record
	for _, r := range p.records {
		if f.PlantType != "" && !strings.EqualFold(r.PlantType, f.PlantType) {
			continue
		}
		if species != "" && !strings.Contains(strings.ToLower(r.Species), species) {
			continue
		}
		if f.MinSignificance != nil && r.Significance < *f.MinSignificance {
			continue
		}
		if f.MaxSignificance != nil && r.Significance > *f.MaxSignificance {
			continue
		}
		out = append(out, r)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}

// Nearest returns the record closest to the given plot coordinates
func (p *Provider) Nearest(soil, climate, elevation float64) (models.Record, bool) {
	i, _, ok := p.index.Nearest(r3.Vector{X: soil, Y: climate, Z: elevation})
	if !ok {
		return models.Record{}, false
	}
	return p.records[i], true
}

// Within returns the records at most radius away from the given plot
// coordinates, in load order
func (p *Provider) Within(soil, climate, elevation, radius float64) []models.Record {
	hits := p.index.Within(r3.Vector{X: soil, Y: climate, Z: elevation}, radius)
	out := make([]models.Record, len(hits))
	for i, pos := range hits {
		out[i] = p.records[pos]
	}
	return out
}

// Summary returns record counts and value ranges
func (p *Provider) Summary() models.Summary {
	sig := make([]float64, len(p.records))
	cnt := make([]float64, len(p.records))
	types := make([]string, len(p.records))
	for i, r := range p.records {
		sig[i] = r.Significance
		cnt[i] = r.SignificanceCount
		types[i] = r.PlantType
	}
	s := models.Summary{
		Source:      p.source,
		RecordCount: len(p.records),
		PlantTypes:  stats.CountBy(types),
	}
	s.MinSignificance, s.MaxSignificance = stats.MinMax(sig)
	s.MeanSignificance = stats.Mean(sig)
	s.MedianSignificance = stats.Median(sig)
	s.MinCount, s.MaxCount = stats.MinMax(cnt)
	return s
}
