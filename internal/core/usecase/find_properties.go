package usecase

import (
	"context"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
	"ndjimba/internal/core/search"
)

type FindPropertiesUseCase struct {
	engine *search.Engine
}

func NewFindPropertiesUseCase(engine *search.Engine) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{engine: engine}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, sort domain.SortKey) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"city":     filters.City,
		"sort":     sort,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.engine.Search(ctx, filters, sort)
	if err != nil {
		ucLogger.Error("Search failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": result.Total})
	return result, nil
}
