package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type GetHomeFeedUseCase interface {
	Execute(ctx context.Context) (*domain.HomeFeed, error)
}
