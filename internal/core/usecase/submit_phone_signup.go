package usecase

import (
	"context"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/authflow"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

// SubmitPhoneSignupUseCase runs the signup form for one request. The request
// context is the view: a client that goes away stops further state writes.
type SubmitPhoneSignupUseCase struct {
	deps authflow.Deps
	opts authflow.Options
}

func NewSubmitPhoneSignupUseCase(deps authflow.Deps, opts authflow.Options) *SubmitPhoneSignupUseCase {
	return &SubmitPhoneSignupUseCase{deps: deps, opts: opts}
}

func (uc *SubmitPhoneSignupUseCase) Execute(ctx context.Context, phone string) (domain.SignupState, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SubmitPhoneSignup"})

	ucLogger.Info("Use case started", nil)

	controller := authflow.New(ctx, uc.deps, uc.opts)
	defer controller.Dismiss()

	state := controller.Submit(ctx, phone)
	if err := ctx.Err(); err != nil {
		ucLogger.Warn("Client went away during signup", port.Fields{"status": state.Status})
		return state, err
	}

	ucLogger.Info("Use case finished", port.Fields{"status": state.Status})
	return state, nil
}
