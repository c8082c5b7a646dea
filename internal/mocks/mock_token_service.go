package mocks

import (
	"context"
	"fmt"
	"time"

	"ndjimba/internal/core/domain"
)

// MockTokenService implements port.TokenServicePort for testing
type MockTokenService struct {
	GenerateTokenFunc func(ctx context.Context, account *domain.Account, ttl time.Duration) (string, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*domain.Claims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateToken(ctx context.Context, account *domain.Account, ttl time.Duration) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(ctx, account, ttl)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_%s", account.ID), nil
}

func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	return nil, domain.ErrTokenInvalid
}
