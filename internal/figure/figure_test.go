package figure

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/asir-flora/internal/config"
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
)

func testProvider() *dataset.Provider {
	return dataset.NewProvider([]models.Record{
		{SoilAxis: 0, ClimateAxis: 1, ElevationAxis: 1, Significance: 0.9, SignificanceCount: 10, PlantType: "Tree", Species: "Acacia tortilis", PhotoRoute: "img/acacia.png"},
		{SoilAxis: 2, ClimateAxis: 2, ElevationAxis: 3, Significance: 0.2, SignificanceCount: 2, PlantType: "Shrub", Species: "Dodonaea viscosa", PhotoRoute: "img/dodonaea.png"},
		{SoilAxis: 3, ClimateAxis: 3, ElevationAxis: 3, Significance: 0.5, SignificanceCount: 6, PlantType: "Tree", Species: "Juniperus procera", PhotoRoute: "img/juniperus.png"},
	}, "test")
}

func fullOptions() Options {
	return OptionsFor(config.Presets()["full"], "")
}

func TestPointData(t *testing.T) {
	p := testProvider()
	data := pointData(p.ByPlantType()["Tree"], p.Summary())
	require.Len(t, data, 2)

	v := data[0].Value
	assert.Equal(t, "Acacia tortilis", data[0].Name)
	assert.Equal(t, 0.0, v[ValueSoil])
	assert.Equal(t, 1.0, v[ValueClimate])
	assert.Equal(t, 0.9, v[ValueSignificance])
	assert.Equal(t, "img/acacia.png", v[ValuePhotoRoute])
	assert.Equal(t, "Acacia tortilis", v[ValueSpecies])
	assert.Equal(t, float64(MaxMarkerSize), v[ValueSize])

	// Smallest count overall is the shrub, so the middle tree gets a mid size
	assert.InDelta(t, 6+0.5*24, data[1].Value[ValueSize], 1e-9)
}

func TestLegendOpts(t *testing.T) {
	assert.Equal(t, "10", legendOpts(config.LegendRight).Right)
	assert.Equal(t, "vertical", legendOpts(config.LegendLeft).Orient)
	assert.Equal(t, "10", legendOpts(config.LegendTop).Top)
	assert.Equal(t, "10", legendOpts(config.LegendBottom).Bottom)

	l := legendOpts("unknown")
	assert.Equal(t, opts.Legend{Show: opts.Bool(true), Right: "10", Top: "middle", Orient: "vertical"}, l)
}

func TestSymbolFor_Cycles(t *testing.T) {
	assert.Equal(t, "circle", SymbolFor(0))
	assert.Equal(t, "diamond", SymbolFor(1))
	assert.Equal(t, "circle", SymbolFor(len(Symbols)))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testProvider(), fullOptions()))
	page := buf.String()

	assert.Contains(t, page, `id="tooltip-container"`)
	assert.Contains(t, page, "visibility: hidden;")
	assert.Contains(t, page, "translateX(-50%)")
	assert.Contains(t, page, ChartID)
	assert.Contains(t, page, "Loamy Soil")
	assert.Contains(t, page, "Mid-altitude")
	assert.Contains(t, page, "Dodonaea viscosa")
	assert.Contains(t, page, `name="viewport"`)
	assert.Contains(t, page, "/api/v1/hover")

	// Injected fragments land inside head and body
	assert.Less(t, strings.Index(page, `name="viewport"`), strings.Index(page, "</head>"))
	assert.Less(t, strings.Index(page, `id="tooltip-container"`), strings.LastIndex(page, "</body>"))
}

func TestRender_HidesPanelWithoutData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testProvider(), fullOptions()))
	page := buf.String()

	// A rate-limited or failed hover response carries no data
	assert.Contains(t, page, `if (!res.data) { hide(); return; }`)
	assert.Contains(t, page, `if (id === seq) { hide(); }`)
	assert.Contains(t, page, `panel.style.visibility = "hidden";`)
}

func TestRender_ClassicHasNoViewport(t *testing.T) {
	var buf bytes.Buffer
	o := OptionsFor(config.Presets()["classic"], "")
	require.NoError(t, Render(&buf, testProvider(), o))
	assert.NotContains(t, buf.String(), `name="viewport"`)
}

func TestRender_CompactAnchor(t *testing.T) {
	var buf bytes.Buffer
	o := OptionsFor(config.Presets()["compact"], "")
	require.NoError(t, Render(&buf, testProvider(), o))
	assert.Contains(t, buf.String(), "right: 50px;")
}

func TestRender_EmptyProvider(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, dataset.NewProvider(nil, "empty"), fullOptions()))
	assert.Contains(t, buf.String(), `id="tooltip-container"`)
}

func TestInject(t *testing.T) {
	out, err := inject([]byte("<html><head></head><body>x</body></html>"), []byte("H"), []byte("B"))
	require.NoError(t, err)
	assert.Equal(t, "<html><head>H</head><body>xB</body></html>", string(out))

	_, err = inject([]byte("<div></div>"), nil, nil)
	assert.ErrorIs(t, err, errNoInjectionPoint)
}
