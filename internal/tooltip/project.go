// Package tooltip maps hover events from the 3D scatter plot to the state of
// the floating image panel.
package tooltip

import (
	"github.com/jengzang/asir-flora/internal/models"
)

// CaptionPrefix is prepended to the species name in the panel caption.
const CaptionPrefix = "Species: "

// Project returns the tooltip state for the current hover event. A nil event
// hides the panel; any other event shows the record's photo and species.
func Project(ev *models.HoverEvent) models.TooltipState {
	if ev == nil {
		return models.TooltipState{}
	}
	return models.TooltipState{
		Content: &models.TooltipContent{
			ImageURL: ev.PhotoRoute,
			Caption:  CaptionPrefix + ev.Species,
		},
		Visible: true,
	}
}

// EventFor builds the hover event a rendered record carries.
func EventFor(r models.Record) *models.HoverEvent {
	return &models.HoverEvent{PhotoRoute: r.PhotoRoute, Species: r.Species}
}
