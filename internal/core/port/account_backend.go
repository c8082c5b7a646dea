package port

import (
	"context"
	"ndjimba/internal/core/domain"
)

// AccountBackendPort is the remote account and profile store.
type AccountBackendPort interface {
	// FindProfileByPhone returns domain.ErrProfileNotFound when no profile uses the number.
	FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error)
	CreateAccount(ctx context.Context, phone, password string) (*domain.Account, error)
	CreateProfile(ctx context.Context, accountID, phone string) error
	// VerifyCredentials returns domain.ErrInvalidCredentials on a mismatch.
	VerifyCredentials(ctx context.Context, phone, password string) (*domain.Account, error)
}
