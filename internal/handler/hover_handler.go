package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/service"
	"github.com/jengzang/asir-flora/pkg/response"
)

// maxHoverBody bounds a hover payload; a real one is a few hundred bytes
const maxHoverBody = 64 << 10

// HoverHandler handles hover events from the plot page
type HoverHandler struct {
	service *service.HoverService
}

// NewHoverHandler creates a new hover handler
func NewHoverHandler(service *service.HoverService) *HoverHandler {
	return &HoverHandler{service: service}
}

// Hover handles POST /api/v1/hover. The body is a hover payload, or null
// (or empty) when the pointer left all points.
func (h *HoverHandler) Hover(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxHoverBody))
	if err != nil {
		response.BadRequest(c, "Failed to read hover payload", err)
		return
	}

	var payload *models.HoverPayload
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			response.BadRequest(c, "Invalid hover payload", err)
			return
		}
	}

	result, err := h.service.Hover(payload)
	if err != nil {
		response.BadRequest(c, "Invalid hover payload", err)
		return
	}

	response.Success(c, result)
}

// Nearest handles GET /api/v1/hover/nearest?x=&y=&z=[&radius=]. With a
// radius the records around the point are returned as well.
func (h *HoverHandler) Nearest(c *gin.Context) {
	var coords [3]float64
	for i, key := range []string{"x", "y", "z"} {
		v, err := finiteQuery(c, key)
		if err != nil {
			response.BadRequest(c, "Invalid "+key+" parameter", err)
			return
		}
		coords[i] = v
	}

	result, rec := h.service.HoverAt(coords[0], coords[1], coords[2])
	data := gin.H{
		"tooltip": result,
		"record":  rec,
	}

	if c.Query("radius") != "" {
		radius, err := finiteQuery(c, "radius")
		if err == nil && radius < 0 {
			err = errNegativeRadius
		}
		if err != nil {
			response.BadRequest(c, "Invalid radius parameter", err)
			return
		}
		data["around"] = h.service.Around(coords[0], coords[1], coords[2], radius)
	}

	response.Success(c, data)
}

var (
	errNotFinite      = errors.New("value must be a finite number")
	errNegativeRadius = errors.New("radius must not be negative")
)

func finiteQuery(c *gin.Context, key string) (float64, error) {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
