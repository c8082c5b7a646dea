package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

type LoginWithCodeUseCase struct {
	backend  port.AccountBackendPort
	tokenSvc port.TokenServicePort
	tokenTTL time.Duration
	delay    time.Duration
}

// NewLoginWithCodeUseCase builds the code login. delay is waited before
// answering; zero disables it.
func NewLoginWithCodeUseCase(backend port.AccountBackendPort, tokenSvc port.TokenServicePort, tokenTTL, delay time.Duration) *LoginWithCodeUseCase {
	return &LoginWithCodeUseCase{
		backend:  backend,
		tokenSvc: tokenSvc,
		tokenTTL: tokenTTL,
		delay:    delay,
	}
}

func (uc *LoginWithCodeUseCase) Execute(ctx context.Context, phone, code string) (*domain.Account, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "LoginWithCode"})
	ucLogger.Info("Use case started: attempting to login with access code", nil)

	if err := uc.wait(ctx); err != nil {
		ucLogger.Warn("Login cancelled during delay", nil)
		return nil, "", err
	}

	input := domain.SanitizePhoneInput(phone)
	if !domain.IsAccessCode(code) {
		ucLogger.Warn("Login failed: malformed access code", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := uc.backend.VerifyCredentials(ctx, input, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ucLogger.Warn("Login failed: invalid credentials", nil)
			return nil, "", err
		}
		ucLogger.Error("Backend failed to verify credentials", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}

	ucLogger = ucLogger.WithFields(port.Fields{"account_id": account.ID})

	token, err := uc.tokenSvc.GenerateToken(ctx, account, uc.tokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token after successful login", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: logged in successfully", nil)
	return account, token, nil
}

func (uc *LoginWithCodeUseCase) wait(ctx context.Context) error {
	if uc.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
