package mocks

import (
	"context"
	"time"

	"ndjimba/internal/core/domain"
)

// MockAccountBackend implements port.AccountBackendPort for testing
type MockAccountBackend struct {
	FindProfileByPhoneFunc func(ctx context.Context, phone string) (*domain.Profile, error)
	CreateAccountFunc      func(ctx context.Context, phone, password string) (*domain.Account, error)
	CreateProfileFunc      func(ctx context.Context, accountID, phone string) error
	VerifyCredentialsFunc  func(ctx context.Context, phone, password string) (*domain.Account, error)
}

// NewMockAccountBackend creates a new MockAccountBackend with default behaviors
func NewMockAccountBackend() *MockAccountBackend {
	return &MockAccountBackend{}
}

func (m *MockAccountBackend) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	if m.FindProfileByPhoneFunc != nil {
		return m.FindProfileByPhoneFunc(ctx, phone)
	}
	// Default behavior: unknown number
	return nil, domain.ErrProfileNotFound
}

func (m *MockAccountBackend) CreateAccount(ctx context.Context, phone, password string) (*domain.Account, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, phone, password)
	}
	// Default behavior: success
	return &domain.Account{ID: "account-" + phone, Phone: phone, CreatedAt: time.Now().UTC()}, nil
}

func (m *MockAccountBackend) CreateProfile(ctx context.Context, accountID, phone string) error {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(ctx, accountID, phone)
	}
	// Default behavior: success
	return nil
}

func (m *MockAccountBackend) VerifyCredentials(ctx context.Context, phone, password string) (*domain.Account, error) {
	if m.VerifyCredentialsFunc != nil {
		return m.VerifyCredentialsFunc(ctx, phone, password)
	}
	// Default behavior: reject
	return nil, domain.ErrInvalidCredentials
}
