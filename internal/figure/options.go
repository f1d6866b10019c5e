package figure

import (
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/asir-flora/internal/config"
)

// ChartID is the DOM id of the chart container
const ChartID = "floraScatter"

// Axis titles, one category legend per line
const (
	SoilAxisTitle      = "Soil Type\n0: Salty | 1: Sandy | 2: Rocky | 3: Loamy Soil"
	ClimateAxisTitle   = "Climate\n1: Arid | 2: Semi-Arid | 3: Sub-Humid"
	ElevationAxisTitle = "Elevation\n1: Lowland | 2: Mid-altitude | 3: Highland"
)

// Marker sizes in pixels for the smallest and largest significance count
const (
	MinMarkerSize = 6
	MaxMarkerSize = 30
)

// Symbols cycled over plant types in sorted order
var Symbols = []string{"circle", "diamond", "triangle", "rect", "roundRect", "pin", "arrow"}

// Options controls page layout
type Options struct {
	PageTitle      string
	LegendPosition string
	TooltipAnchor  string
	MobileViewport bool
	AssetsHost     string
	HoverURL       string // Endpoint the page posts hover payloads to
	Width          string
	Height         string
}

// OptionsFor derives page options from a layout variant
func OptionsFor(v config.Variant, assetsHost string) Options {
	return Options{
		PageTitle:      "Asir Flora",
		LegendPosition: v.LegendPosition,
		TooltipAnchor:  v.TooltipAnchor,
		MobileViewport: v.MobileViewport,
		AssetsHost:     assetsHost,
		HoverURL:       "/api/v1/hover",
		Width:          "100%",
		Height:         "100vh",
	}
}

func legendOpts(position string) opts.Legend {
	l := opts.Legend{Show: opts.Bool(true)}
	switch position {
	case config.LegendLeft:
		l.Left, l.Top, l.Orient = "10", "middle", "vertical"
	case config.LegendTop:
		l.Top, l.Left = "10", "center"
	case config.LegendBottom:
		l.Bottom, l.Left = "10", "center"
	default:
		l.Right, l.Top, l.Orient = "10", "middle", "vertical"
	}
	return l
}

// SymbolFor returns the marker symbol of the i-th plant type
func SymbolFor(i int) string {
	return Symbols[i%len(Symbols)]
}
