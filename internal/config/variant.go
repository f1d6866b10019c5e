package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jengzang/asir-flora/internal/tooltip"
)

// DefaultVariant is the most complete layout
const DefaultVariant = "full"

// Legend positions
const (
	LegendLeft   = "left"
	LegendRight  = "right"
	LegendTop    = "top"
	LegendBottom = "bottom"
)

// Variant is one page layout preset
type Variant struct {
	Name            string `yaml:"name" json:"name"`
	LegendPosition  string `yaml:"legend_position" json:"legend_position"`
	TooltipAnchor   string `yaml:"tooltip_anchor" json:"tooltip_anchor"`
	ReadPortFromEnv bool   `yaml:"read_port_from_env" json:"read_port_from_env"`
	MobileViewport  bool   `yaml:"mobile_viewport" json:"mobile_viewport"` // Emit viewport meta tags
}

// Presets returns the built-in variants keyed by name
func Presets() map[string]Variant {
	return map[string]Variant{
		"full": {
			Name:            "full",
			LegendPosition:  LegendRight,
			TooltipAnchor:   tooltip.AnchorBottomCenter,
			ReadPortFromEnv: true,
			MobileViewport:  true,
		},
		"classic": {
			Name:           "classic",
			LegendPosition: LegendRight,
			TooltipAnchor:  tooltip.AnchorBottomCenter,
		},
		"compact": {
			Name:            "compact",
			LegendPosition:  LegendTop,
			TooltipAnchor:   tooltip.AnchorTopRight,
			ReadPortFromEnv: true,
			MobileViewport:  true,
		},
	}
}

// Validate checks legend position and tooltip anchor
func (v Variant) Validate() error {
	switch v.LegendPosition {
	case LegendLeft, LegendRight, LegendTop, LegendBottom:
	default:
		return fmt.Errorf("%w: legend position %q", ErrInvalidConfig, v.LegendPosition)
	}
	if !tooltip.ValidAnchor(v.TooltipAnchor) {
		return fmt.Errorf("%w: tooltip anchor %q", ErrInvalidConfig, v.TooltipAnchor)
	}
	return nil
}

type variantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadVariants reads extra presets from a YAML file:
//
//	variants:
//	  - name: kiosk
//	    legend_position: bottom
//	    tooltip_anchor: top-left
//	    read_port_from_env: true
func LoadVariants(path string) (map[string]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}

	var f variantsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	out := make(map[string]Variant, len(f.Variants))
	for _, v := range f.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: variant without a name in %s", ErrInvalidConfig, path)
		}
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.Name, err)
		}
		out[v.Name] = v
	}
	return out, nil
}
