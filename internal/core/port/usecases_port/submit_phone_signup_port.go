package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

// SubmitPhoneSignupUseCase runs one signup submission and returns the final form state.
type SubmitPhoneSignupUseCase interface {
	Execute(ctx context.Context, phone string) (domain.SignupState, error)
}
