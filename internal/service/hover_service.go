package service

import (
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/tooltip"
)

// HoverResult is a tooltip state together with the panel styling for it
type HoverResult struct {
	models.TooltipState
	Style      map[string]string `json:"style"`
	ImageStyle map[string]string `json:"image_style"`
}

// HoverService turns hover events into tooltip states
type HoverService struct {
	provider *dataset.Provider
	anchor   string
}

// NewHoverService creates a new hover service
func NewHoverService(provider *dataset.Provider, anchor string) *HoverService {
	return &HoverService{provider: provider, anchor: anchor}
}

// Hover projects a rendering surface payload. A nil payload hides the panel.
func (s *HoverService) Hover(payload *models.HoverPayload) (HoverResult, error) {
	ev, err := tooltip.FromPayload(payload)
	if err != nil {
		return HoverResult{}, err
	}
	return s.result(tooltip.Project(ev)), nil
}

// HoverAt resolves the record nearest to the given plot coordinates and
// projects it. The record is nil when the table is empty.
func (s *HoverService) HoverAt(soil, climate, elevation float64) (HoverResult, *models.Record) {
	rec, ok := s.provider.Nearest(soil, climate, elevation)
	if !ok {
		return s.result(tooltip.Project(nil)), nil
	}
	return s.result(tooltip.Project(tooltip.EventFor(rec))), &rec
}

// Around returns the records within radius of the given plot coordinates
func (s *HoverService) Around(soil, climate, elevation, radius float64) []models.Record {
	return s.provider.Within(soil, climate, elevation, radius)
}

func (s *HoverService) result(st models.TooltipState) HoverResult {
	return HoverResult{
		TooltipState: st,
		Style:        tooltip.PanelStyle(s.anchor, st.Visible),
		ImageStyle:   tooltip.ImageStyle(),
	}
}
