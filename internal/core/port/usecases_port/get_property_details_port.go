package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.PropertyDetailsView, error)
}
