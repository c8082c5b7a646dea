package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, city domain.City) (*domain.FilterOptions, error)
}
