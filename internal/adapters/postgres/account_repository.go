package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"ndjimba/internal/core/domain"
)

const uniqueViolation = "23505"

// AccountRepository is an account backend on PostgreSQL. Access codes are
// stored as bcrypt hashes.
type AccountRepository struct {
	pool     *pgxpool.Pool
	hashCost int
}

func NewAccountRepository(pool *pgxpool.Pool) (*AccountRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("AccountRepository: pool cannot be nil")
	}
	return &AccountRepository{pool: pool, hashCost: bcrypt.DefaultCost}, nil
}

func (r *AccountRepository) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT id, phone_number, whatsapp, created_at, updated_at FROM profiles WHERE phone_number = $1`,
		phone,
	).Scan(&p.ID, &p.PhoneNumber, &p.WhatsApp, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("AccountRepository: failed to find profile: %w", err)
	}
	return &p, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, phone, password string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.hashCost)
	if err != nil {
		return nil, fmt.Errorf("AccountRepository: failed to hash access code: %w", err)
	}

	acc := domain.Account{ID: uuid.New().String(), Phone: phone}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO accounts (id, phone, code_hash) VALUES ($1, $2, $3) RETURNING created_at`,
		acc.ID, phone, string(hash),
	).Scan(&acc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("AccountRepository: failed to create account: %w", err)
	}
	return &acc, nil
}

func (r *AccountRepository) CreateProfile(ctx context.Context, accountID, phone string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (id, phone_number) VALUES ($1, $2)`,
		accountID, phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("AccountRepository: failed to create profile: %w", err)
	}
	return nil
}

func (r *AccountRepository) VerifyCredentials(ctx context.Context, phone, password string) (*domain.Account, error) {
	var (
		acc  domain.Account
		hash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, phone, code_hash, created_at FROM accounts WHERE phone = $1`,
		phone,
	).Scan(&acc.ID, &acc.Phone, &hash, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("AccountRepository: failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("AccountRepository: failed to compare access code: %w", err)
	}
	return &acc, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
