package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/adapters/memory"
	"ndjimba/internal/core/authflow"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/search"
	"ndjimba/internal/core/usecase"
	"ndjimba/internal/mocks"
)

func TestFindPropertiesUseCase(t *testing.T) {
	uc := usecase.NewFindPropertiesUseCase(search.NewEngine(memory.NewSampleCatalog()))

	f := domain.NewSearchFilters()
	f.PropertyTypes = []domain.PropertyType{domain.TypeLand}
	res, err := uc.Execute(context.Background(), f, domain.SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "8", res.Properties[0].ID)
	assert.Equal(t, "7", res.Properties[1].ID)
}

func TestGetPropertyDetailsUseCase(t *testing.T) {
	uc := usecase.NewGetPropertyDetailsUseCase(memory.NewSampleCatalog())

	view, err := uc.Execute(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Chambre meublée à PK5", view.Property.Title)
	assert.Equal(t, "tel:+24166123789", view.Contact.Call)
	assert.Empty(t, view.Contact.WhatsApp, "owner of listing 4 has no WhatsApp")

	view, err = uc.Execute(context.Background(), "1")
	require.NoError(t, err)
	assert.Contains(t, view.Contact.WhatsApp, "https://wa.me/24174123456?text=")

	_, err = uc.Execute(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestGetHomeFeedUseCase(t *testing.T) {
	uc := usecase.NewGetHomeFeedUseCase(memory.NewSampleCatalog())

	feed, err := uc.Execute(context.Background())
	require.NoError(t, err)

	featured := make([]string, 0, len(feed.Featured))
	for _, p := range feed.Featured {
		assert.True(t, p.Verified)
		featured = append(featured, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "5", "6", "7", "8"}, featured)

	require.Len(t, feed.Recent, usecase.RecentListingsLimit)
	assert.Equal(t, "8", feed.Recent[0].ID)
	assert.Equal(t, "5", feed.Recent[3].ID)
}

func TestGetHomeFeedUseCase_CatalogError(t *testing.T) {
	catalog := mocks.NewMockCatalog()
	catalog.AllFunc = func(ctx context.Context) ([]domain.Property, error) { return nil, errors.New("down") }

	_, err := usecase.NewGetHomeFeedUseCase(catalog).Execute(context.Background())
	assert.Error(t, err)
}

func TestGetFilterOptionsUseCase(t *testing.T) {
	uc := usecase.NewGetFilterOptionsUseCase()

	opts, err := uc.Execute(context.Background(), domain.CityOwendo)
	require.NoError(t, err)
	assert.Len(t, opts.Neighborhoods, 8)
	assert.Len(t, opts.PropertyTypes, 11)

	_, err = uc.Execute(context.Background(), "Paris")
	assert.ErrorIs(t, err, domain.ErrUnknownCity)
}

func TestValidatePhoneUseCase(t *testing.T) {
	res := usecase.NewValidatePhoneUseCase().Execute(context.Background(), "74-12-34-56")
	assert.True(t, res.IsValid)
	assert.Equal(t, "74123456", res.Normalized)
}

func TestSubmitPhoneSignupUseCase(t *testing.T) {
	backend := mocks.NewMockAccountBackend()
	created := false
	backend.CreateAccountFunc = func(ctx context.Context, phone, password string) (*domain.Account, error) {
		created = true
		assert.Len(t, password, 6)
		return &domain.Account{ID: "acc", Phone: phone}, nil
	}
	codes := mocks.NewMockCodeGenerator()

	uc := usecase.NewSubmitPhoneSignupUseCase(authflow.Deps{Backend: backend, Codes: codes}, authflow.Options{})
	state, err := uc.Execute(context.Background(), "74123456")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.SignupAccountCreated, state.Status)
	require.NotNil(t, state.AccessCode)
	assert.Equal(t, "123456", *state.AccessCode)
}

func TestSubmitPhoneSignupUseCase_ClientGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	backend := mocks.NewMockAccountBackend()
	backend.FindProfileByPhoneFunc = func(ctx context.Context, phone string) (*domain.Profile, error) {
		cancel()
		return nil, ctx.Err()
	}

	uc := usecase.NewSubmitPhoneSignupUseCase(authflow.Deps{Backend: backend, Codes: mocks.NewMockCodeGenerator()}, authflow.Options{})
	state, err := uc.Execute(ctx, "74123456")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.SignupSubmitting, state.Status)
	assert.Nil(t, state.ErrorMessage)
}

func TestLoginWithCodeUseCase(t *testing.T) {
	backend := mocks.NewMockAccountBackend()
	backend.VerifyCredentialsFunc = func(ctx context.Context, phone, password string) (*domain.Account, error) {
		if phone == "74123456" && password == "482913" {
			return &domain.Account{ID: "acc-7", Phone: phone}, nil
		}
		return nil, domain.ErrInvalidCredentials
	}
	tokens := mocks.NewMockTokenService()
	var gotTTL time.Duration
	tokens.GenerateTokenFunc = func(ctx context.Context, account *domain.Account, ttl time.Duration) (string, error) {
		gotTTL = ttl
		return "signed." + account.ID, nil
	}
	uc := usecase.NewLoginWithCodeUseCase(backend, tokens, 24*time.Hour, 0)

	acc, token, err := uc.Execute(context.Background(), "74 12 34 56", "482913")
	require.NoError(t, err)
	assert.Equal(t, "acc-7", acc.ID)
	assert.Equal(t, "signed.acc-7", token)
	assert.Equal(t, 24*time.Hour, gotTTL)

	_, _, err = uc.Execute(context.Background(), "74123456", "111111")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = uc.Execute(context.Background(), "74123456", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWithCodeUseCase_BackendError(t *testing.T) {
	backend := mocks.NewMockAccountBackend()
	boom := errors.New("down")
	backend.VerifyCredentialsFunc = func(ctx context.Context, phone, password string) (*domain.Account, error) {
		return nil, boom
	}
	_, _, err := usecase.NewLoginWithCodeUseCase(backend, mocks.NewMockTokenService(), time.Hour, 0).
		Execute(context.Background(), "74123456", "482913")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWithCodeUseCase_DelayHonoursCancellation(t *testing.T) {
	uc := usecase.NewLoginWithCodeUseCase(mocks.NewMockAccountBackend(), mocks.NewMockTokenService(), time.Hour, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := uc.Execute(ctx, "74123456", "482913")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestReportListingUseCase(t *testing.T) {
	events := memory.NewEventLog()
	uc := usecase.NewReportListingUseCase(memory.NewSampleCatalog(), events)

	msg, err := uc.Execute(context.Background(), "2", domain.ReportFraud)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportConfirmation(domain.ReportFraud), msg)

	reported := events.ListingsReported()
	require.Len(t, reported, 1)
	assert.Equal(t, "2", reported[0].PropertyID)
	assert.Equal(t, "Annonce frauduleuse", reported[0].Reason)

	_, err = uc.Execute(context.Background(), "404", domain.ReportOther)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = uc.Execute(context.Background(), "2", "spam")
	assert.ErrorIs(t, err, domain.ErrUnknownReportReason)
	assert.Len(t, events.ListingsReported(), 1)
}
