package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, sort domain.SortKey) (*domain.SearchResult, error)
}
