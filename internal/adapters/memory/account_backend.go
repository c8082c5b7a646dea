package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ndjimba/internal/core/domain"
)

type storedAccount struct {
	account  domain.Account
	passHash []byte
}

// AccountBackend keeps accounts and profiles in process memory.
type AccountBackend struct {
	mu       sync.RWMutex
	accounts map[string]*storedAccount // by id
	byPhone  map[string]string         // phone -> account id
	profiles map[string]domain.Profile // by phone
	hashCost int
	now      func() time.Time
}

func NewAccountBackend() *AccountBackend {
	return &AccountBackend{
		accounts: make(map[string]*storedAccount),
		byPhone:  make(map[string]string),
		profiles: make(map[string]domain.Profile),
		hashCost: bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (b *AccountBackend) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.profiles[phone]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (b *AccountBackend) CreateAccount(ctx context.Context, phone, password string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access code: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byPhone[phone]; exists {
		return nil, domain.ErrAccountExists
	}
	acc := domain.Account{
		ID:        uuid.New().String(),
		Phone:     phone,
		CreatedAt: b.now(),
	}
	b.accounts[acc.ID] = &storedAccount{account: acc, passHash: hash}
	b.byPhone[phone] = acc.ID
	return &acc, nil
}

func (b *AccountBackend) CreateProfile(ctx context.Context, accountID, phone string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[accountID]; !ok {
		return fmt.Errorf("unknown account %s", accountID)
	}
	if _, exists := b.profiles[phone]; exists {
		return domain.ErrAccountExists
	}
	now := b.now()
	b.profiles[phone] = domain.Profile{
		ID:          accountID,
		PhoneNumber: phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

func (b *AccountBackend) VerifyCredentials(ctx context.Context, phone, password string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	id, ok := b.byPhone[phone]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	stored := b.accounts[id]
	if err := bcrypt.CompareHashAndPassword(stored.passHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare access code: %w", err)
	}
	acc := stored.account
	return &acc, nil
}
