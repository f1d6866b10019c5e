package service

import (
	"bytes"
	"sync"

	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/figure"
)

// FigureService renders the plot page. The table never changes after load,
// so the page is rendered once and reused.
type FigureService struct {
	provider *dataset.Provider
	opts     figure.Options

	once sync.Once
	page []byte
	err  error
}

// NewFigureService creates a new figure service
func NewFigureService(provider *dataset.Provider, opts figure.Options) *FigureService {
	return &FigureService{provider: provider, opts: opts}
}

// Page returns the rendered HTML page
func (s *FigureService) Page() ([]byte, error) {
	s.once.Do(func() {
		var buf bytes.Buffer
		s.err = figure.Render(&buf, s.provider, s.opts)
		s.page = buf.Bytes()
	})
	return s.page, s.err
}
