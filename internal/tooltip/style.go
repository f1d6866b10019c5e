package tooltip

import (
	"sort"
	"strings"
)

// Tooltip anchors
const (
	AnchorBottomCenter = "bottom-center"
	AnchorTopRight     = "top-right"
	AnchorTopLeft      = "top-left"
	AnchorFollow       = "follow" // positioned next to the pointer by the page script
)

// Anchors lists the supported tooltip anchors.
var Anchors = []string{AnchorBottomCenter, AnchorTopRight, AnchorTopLeft, AnchorFollow}

// ValidAnchor reports whether anchor is supported.
func ValidAnchor(anchor string) bool {
	for _, a := range Anchors {
		if a == anchor {
			return true
		}
	}
	return false
}

// PanelStyle returns the CSS properties of the tooltip container for the
// given anchor. Unknown anchors fall back to bottom-center.
func PanelStyle(anchor string, visible bool) map[string]string {
	style := map[string]string{
		"position":      "absolute",
		"padding":       "10px",
		"border":        "1px solid gray",
		"border-radius": "5px",
		"background":    "white",
		"z-index":       "10",
		"visibility":    "hidden",
	}
	if visible {
		style["visibility"] = "visible"
	}

	switch anchor {
	case AnchorTopRight:
		style["top"] = "50px"
		style["right"] = "50px"
	case AnchorTopLeft:
		style["top"] = "50px"
		style["left"] = "50px"
	case AnchorFollow:
		style["pointer-events"] = "none"
	default:
		style["bottom"] = "50px"
		style["left"] = "50%"
		style["transform"] = "translateX(-50%)"
	}
	return style
}

// ImageStyle returns the CSS properties of the photo inside the panel.
func ImageStyle() map[string]string {
	return map[string]string{
		"width":         "200px",
		"height":        "200px",
		"object-fit":    "cover",
		"border-radius": "5px",
	}
}

// CSS renders a style map as an inline style attribute value with keys in
// sorted order.
func CSS(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(style[k])
		b.WriteString(";")
	}
	return b.String()
}
