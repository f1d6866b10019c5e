package service

import (
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
)

// RecordService handles business logic for species records
type RecordService struct {
	provider *dataset.Provider
}

// NewRecordService creates a new record service
func NewRecordService(provider *dataset.Provider) *RecordService {
	return &RecordService{provider: provider}
}

// List retrieves records with filtering
func (s *RecordService) List(filter models.RecordFilter) []models.Record {
	return s.provider.Filter(filter)
}

// Get retrieves a single record by ID
func (s *RecordService) Get(id int64) (models.Record, bool) {
	return s.provider.Get(id)
}

// Summary returns counts and value ranges of the table
func (s *RecordService) Summary() models.Summary {
	return s.provider.Summary()
}
