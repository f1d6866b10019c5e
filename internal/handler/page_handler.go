package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/asir-flora/internal/config"
	"github.com/jengzang/asir-flora/internal/service"
	"github.com/jengzang/asir-flora/pkg/response"
)

// PageHandler serves the plot page and its layout configuration
type PageHandler struct {
	service *service.FigureService
	cfg     *config.Config
}

// NewPageHandler creates a new page handler
func NewPageHandler(service *service.FigureService, cfg *config.Config) *PageHandler {
	return &PageHandler{service: service, cfg: cfg}
}

// GetPage handles GET /
func (h *PageHandler) GetPage(c *gin.Context) {
	page, err := h.service.Page()
	if err != nil {
		response.InternalError(c, "Failed to render page", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// GetConfig handles GET /api/v1/config
func (h *PageHandler) GetConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"variant": h.cfg.Variant,
		"port":    h.cfg.Port,
		"source":  h.cfg.DataSource,
	})
}
