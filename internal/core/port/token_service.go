package port

import (
	"context"
	"ndjimba/internal/core/domain"
	"time"
)

// TokenServicePort issues and checks session tokens.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, account *domain.Account, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
