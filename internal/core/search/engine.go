package search

import (
	"context"
	"fmt"

	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

// Engine runs filter then sort over an injected catalog.
type Engine struct {
	catalog port.CatalogPort
}

func NewEngine(catalog port.CatalogPort) *Engine {
	return &Engine{catalog: catalog}
}

// Search filters the catalog and orders the result by key.
func (e *Engine) Search(ctx context.Context, filters domain.SearchFilters, key domain.SortKey) (*domain.SearchResult, error) {
	if key == "" {
		key = domain.DefaultSortKey
	}
	if _, err := domain.ParseSortKey(string(key)); err != nil {
		return nil, err
	}
	records, err := e.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	sorted := Sort(Filter(records, filters), key)
	return &domain.SearchResult{
		Properties: sorted,
		Total:      len(sorted),
		Sort:       key,
	}, nil
}

// NewSession opens a search session over the current catalog.
func (e *Engine) NewSession(ctx context.Context) (*Session, error) {
	records, err := e.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewSession(records), nil
}
