package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/service"
	"github.com/jengzang/asir-flora/pkg/response"
)

// RecordHandler handles HTTP requests for species records
type RecordHandler struct {
	service *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(service *service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// GetRecords handles GET /api/v1/records
func (h *RecordHandler) GetRecords(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	records := h.service.List(filter)
	if records == nil {
		records = []models.Record{}
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// GetRecord handles GET /api/v1/records/:id
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid record ID", err)
		return
	}

	rec, ok := h.service.Get(id)
	if !ok {
		response.NotFound(c, "Record not found")
		return
	}

	response.Success(c, rec)
}

// GetSummary handles GET /api/v1/summary
func (h *RecordHandler) GetSummary(c *gin.Context) {
	response.Success(c, h.service.Summary())
}
