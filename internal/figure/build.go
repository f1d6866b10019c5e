// Package figure renders the species table as an interactive 3D scatter page.
package figure

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/stats"
	"github.com/jengzang/asir-flora/internal/tooltip"
)

// Positions inside each point's value array
const (
	ValueSoil = iota
	ValueClimate
	ValueElevation
	ValueSignificance
	ValueCount
	ValuePhotoRoute
	ValueSpecies
	ValueSize
)

var significanceColors = []string{"#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921"}

// Build creates the 3D scatter chart with one series per plant type
func Build(p *dataset.Provider, o Options) *charts.Scatter3D {
	summary := p.Summary()
	minSig, maxSig := summary.MinSignificance, summary.MaxSignificance
	if maxSig <= minSig {
		maxSig = minSig + 1
	}

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  o.PageTitle,
			ChartID:    ChartID,
			Width:      o.Width,
			Height:     o.Height,
			AssetsHost: o.AssetsHost,
		}),
		charts.WithLegendOpts(legendOpts(o.LegendPosition)),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: SoilAxisTitle, Show: opts.Bool(true)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: ClimateAxisTitle, Show: opts.Bool(true)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: ElevationAxisTitle, Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minSig),
			Max:        float32(maxSig),
			Dimension:  "3",
			Text:       []string{"Significance"},
			InRange:    &opts.VisualMapInRange{Color: significanceColors},
		}),
	)

	groups := p.ByPlantType()
	for _, plantType := range p.PlantTypes() {
		scatter.AddSeries(plantType, pointData(groups[plantType], summary))
	}
	return scatter
}

func pointData(records []models.Record, s models.Summary) []opts.Chart3DData {
	data := make([]opts.Chart3DData, 0, len(records))
	for _, r := range records {
		custom := tooltip.CustomData(r)
		size := stats.Scale(r.SignificanceCount, s.MinCount, s.MaxCount, MinMarkerSize, MaxMarkerSize)
		data = append(data, opts.Chart3DData{
			Name: r.Species,
			Value: []interface{}{
				r.SoilAxis, r.ClimateAxis, r.ElevationAxis,
				r.Significance, r.SignificanceCount,
				custom[0], custom[1],
				size,
			},
		})
	}
	return data
}
