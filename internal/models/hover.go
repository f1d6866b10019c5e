package models

// HoverEvent is the hovered record's attached payload. A nil *HoverEvent
// means the pointer is not over any rendered point.
type HoverEvent struct {
	PhotoRoute string `json:"photo_route"`
	Species    string `json:"species"`
}

// HoverPoint is a single point entry of a rendering surface hover payload.
// CustomData holds [photoRoute, species] in that order.
type HoverPoint struct {
	CustomData  []interface{} `json:"customdata"`
	SeriesIndex int           `json:"seriesIndex,omitempty"`
	DataIndex   int           `json:"dataIndex,omitempty"`
}

// HoverPayload is what the page posts on every pointer-move tick
type HoverPayload struct {
	Points []HoverPoint `json:"points"`
}

// TooltipContent is the image and caption shown in the tooltip panel
type TooltipContent struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// TooltipState is derived from the current hover event only.
// Visible is true exactly when Content is non-nil.
type TooltipState struct {
	Content *TooltipContent `json:"content"`
	Visible bool            `json:"visible"`
}
