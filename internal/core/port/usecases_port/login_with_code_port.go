package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type LoginWithCodeUseCase interface {
	Execute(ctx context.Context, phone, code string) (*domain.Account, string, error) // returns the session token
}
