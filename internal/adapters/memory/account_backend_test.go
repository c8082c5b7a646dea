package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ndjimba/internal/core/domain"
)

func newTestBackend() *AccountBackend {
	b := NewAccountBackend()
	b.hashCost = bcrypt.MinCost
	return b
}

func TestAccountBackend_SignupLifecycle(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend()

	_, err := b.FindProfileByPhone(ctx, "74123456")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	acc, err := b.CreateAccount(ctx, "74123456", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, acc.ID)
	require.NoError(t, b.CreateProfile(ctx, acc.ID, "74123456"))

	profile, err := b.FindProfileByPhone(ctx, "74123456")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, profile.ID)

	_, err = b.CreateAccount(ctx, "74123456", "654321")
	assert.ErrorIs(t, err, domain.ErrAccountExists)
}

func TestAccountBackend_VerifyCredentials(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend()
	acc, err := b.CreateAccount(ctx, "66123456", "424242")
	require.NoError(t, err)

	got, err := b.VerifyCredentials(ctx, "66123456", "424242")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	_, err = b.VerifyCredentials(ctx, "66123456", "000000")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = b.VerifyCredentials(ctx, "77000000", "424242")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountBackend_CreateProfileUnknownAccount(t *testing.T) {
	err := newTestBackend().CreateProfile(context.Background(), "missing", "74123456")
	assert.Error(t, err)
}
