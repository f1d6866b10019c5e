package tooltip

import (
	"errors"
	"fmt"

	"github.com/jengzang/asir-flora/internal/models"
)

// ErrMalformedPayload is returned when a hover payload does not carry
// [photoRoute, species] as its custom data.
var ErrMalformedPayload = errors.New("malformed hover payload")

// CustomData returns the positional custom data attached to a record's point.
// The order is fixed: photo route first, species second.
func CustomData(r models.Record) []interface{} {
	return []interface{}{r.PhotoRoute, r.Species}
}

// FromPayload decodes a rendering surface payload into a hover event.
// A nil payload or one without points means the pointer left all points.
// Only the first point is considered.
func FromPayload(p *models.HoverPayload) (*models.HoverEvent, error) {
	if p == nil || len(p.Points) == 0 {
		return nil, nil
	}

	data := p.Points[0].CustomData
	if len(data) != 2 {
		return nil, fmt.Errorf("%w: customdata has %d entries, want 2", ErrMalformedPayload, len(data))
	}
	photo, ok := data[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: photo route is %T, want string", ErrMalformedPayload, data[0])
	}
	species, ok := data[1].(string)
	if !ok {
		return nil, fmt.Errorf("%w: species is %T, want string", ErrMalformedPayload, data[1])
	}

	return &models.HoverEvent{PhotoRoute: photo, Species: species}, nil
}
