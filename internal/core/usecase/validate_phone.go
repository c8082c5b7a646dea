package usecase

import (
	"context"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

type ValidatePhoneUseCase struct{}

func NewValidatePhoneUseCase() *ValidatePhoneUseCase {
	return &ValidatePhoneUseCase{}
}

func (uc *ValidatePhoneUseCase) Execute(ctx context.Context, raw string) domain.PhoneValidation {
	res := domain.ValidatePhone(raw)
	contextkeys.LoggerFromContext(ctx).Debug("Phone validated", port.Fields{
		"use_case": "ValidatePhone",
		"is_valid": res.IsValid,
	})
	return res
}
