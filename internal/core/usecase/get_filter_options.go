package usecase

import (
	"context"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

type GetFilterOptionsUseCase struct{}

func NewGetFilterOptionsUseCase() *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, city domain.City) (*domain.FilterOptions, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptions",
		"city":     city,
	})

	options, err := domain.BuildFilterOptions(city)
	if err != nil {
		ucLogger.Warn("Unknown city requested", nil)
		return nil, err
	}

	ucLogger.Debug("Filter options built", port.Fields{"neighborhoods": len(options.Neighborhoods)})
	return &options, nil
}
