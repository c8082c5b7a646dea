package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type ValidatePhoneUseCase interface {
	Execute(ctx context.Context, raw string) domain.PhoneValidation
}
