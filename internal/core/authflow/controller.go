// Package authflow drives the phone-number signup form: lookup of an existing
// profile, or creation of an account protected by a generated access code.
//
// A Controller belongs to one view. Its liveness is the view context given to
// New; once that context is done (or Dismiss is called) no state write from
// an in-flight submission is applied anymore.
package authflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

// ValidationMode decides whether local phone validation gates the backend calls.
type ValidationMode int

const (
	// ValidationAdvisory computes and exposes validity without gating the
	// submission. Unvalidated numbers do reach the backend in this mode.
	ValidationAdvisory ValidationMode = iota
	// ValidationEnforced rejects invalid numbers before any backend call.
	ValidationEnforced
)

// Deps are the collaborators of a controller. Events may be nil.
type Deps struct {
	Backend port.AccountBackendPort
	Codes   port.CodeGeneratorPort
	Support port.SupportChannelPort
	Events  port.EventPublisherPort
}

type Options struct {
	Validation    ValidationMode
	SupportNumber string
	Now           func() time.Time
}

type Controller struct {
	deps Deps
	opts Options

	mu      sync.Mutex
	alive   context.Context
	dismiss context.CancelFunc
	state   domain.SignupState
}

// New creates a controller bound to viewCtx.
func New(viewCtx context.Context, deps Deps, opts Options) *Controller {
	if opts.SupportNumber == "" {
		opts.SupportNumber = domain.DefaultSupportWhatsApp
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	alive, dismiss := context.WithCancel(viewCtx)
	return &Controller{
		deps:    deps,
		opts:    opts,
		alive:   alive,
		dismiss: dismiss,
		state:   domain.SignupState{Status: domain.SignupIdle},
	}
}

// Dismiss tears the view down. No state change is observable after it returns.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismiss()
}

// Alive reports whether the owning view is still mounted.
func (c *Controller) Alive() bool {
	return c.alive.Err() == nil
}

// State returns a snapshot of the form.
func (c *Controller) State() domain.SignupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.state)
}

// SetPhone records keystrokes the way the phone field does.
func (c *Controller) SetPhone(raw string) {
	c.update(func(s *domain.SignupState) {
		s.PhoneInput = domain.SanitizePhoneInput(raw)
		s.Validation = domain.ValidatePhone(s.PhoneInput)
	})
}

// Submit runs one signup attempt for phone and returns the resulting state.
// Remote calls run under ctx; their outcome is only written while the view
// is alive.
func (c *Controller) Submit(ctx context.Context, phone string) domain.SignupState {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "authflow"})

	if !c.Alive() {
		return c.State()
	}

	input := domain.SanitizePhoneInput(phone)
	validation := domain.ValidatePhone(phone)
	c.update(func(s *domain.SignupState) {
		s.Status = domain.SignupSubmitting
		s.PhoneInput = input
		s.Validation = validation
		s.Loading = true
		s.ErrorMessage = nil
		s.AccessCode = nil
		s.SupportLink = nil
	})
	c.run(ctx, logger, input, validation)
	c.update(func(s *domain.SignupState) { s.Loading = false })
	return c.State()
}

func (c *Controller) run(ctx context.Context, logger port.LoggerPort, input string, validation domain.PhoneValidation) {
	if c.opts.Validation == ValidationEnforced && !validation.IsValid {
		logger.Info("Signup rejected by phone validation", port.Fields{"normalized": validation.Normalized})
		c.update(func(s *domain.SignupState) {
			s.Status = domain.SignupFailed
			s.ErrorMessage = strPtr(domain.InvalidPhoneMessage)
		})
		return
	}
	if !validation.IsValid {
		logger.Warn("Submitting a phone number that failed validation", port.Fields{"normalized": validation.Normalized})
	}

	profile, err := c.deps.Backend.FindProfileByPhone(ctx, input)
	if !c.Alive() {
		return
	}
	switch {
	case err == nil && profile != nil:
		c.existingAccount(ctx, logger, input)
	case err == nil || errors.Is(err, domain.ErrProfileNotFound):
		c.createAccount(ctx, logger, input)
	default:
		c.fail(logger, "Failed to look up profile", err)
	}
}

func (c *Controller) existingAccount(ctx context.Context, logger port.LoggerPort, phone string) {
	link := domain.BuildSupportLink(c.opts.SupportNumber, phone)
	c.update(func(s *domain.SignupState) {
		s.Status = domain.SignupExistingAccount
		s.ErrorMessage = strPtr(domain.ExistingAccountMessage)
		s.SupportLink = &link
	})

	if c.deps.Support == nil {
		return
	}
	if err := c.deps.Support.Open(ctx, phone, link); err != nil {
		logger.Warn("Could not open support channel", port.Fields{"error": err.Error()})
	}
}

func (c *Controller) createAccount(ctx context.Context, logger port.LoggerPort, phone string) {
	code, err := c.deps.Codes.Generate()
	if err != nil {
		c.fail(logger, "Failed to generate access code", err)
		return
	}

	account, err := c.deps.Backend.CreateAccount(ctx, phone, code)
	if !c.Alive() {
		return
	}
	if err != nil {
		c.fail(logger, "Failed to create account", err)
		return
	}
	if account == nil {
		c.fail(logger, "Backend returned no account", errors.New("empty account"))
		return
	}

	if err := c.deps.Backend.CreateProfile(ctx, account.ID, phone); err != nil {
		c.fail(logger, "Failed to create profile", err)
		return
	}

	applied := c.update(func(s *domain.SignupState) {
		s.Status = domain.SignupAccountCreated
		s.AccessCode = strPtr(code)
	})
	logger.Info("Account created", port.Fields{"account_id": account.ID, "state_applied": applied})

	if c.deps.Events == nil {
		return
	}
	event := domain.AccountRegisteredEvent{
		EventID:      uuid.New().String(),
		AccountID:    account.ID,
		PhoneNumber:  phone,
		RegisteredAt: c.opts.Now(),
	}
	if err := c.deps.Events.PublishAccountRegistered(ctx, event); err != nil {
		logger.Warn("Failed to publish account registered event", port.Fields{"error": err.Error()})
	}
}

func (c *Controller) fail(logger port.LoggerPort, msg string, err error) {
	logger.Error(msg, err, nil)
	c.update(func(s *domain.SignupState) {
		s.Status = domain.SignupFailed
		s.ErrorMessage = strPtr(domain.GenericErrorMessage)
	})
}

// update applies fn only while the view is alive and reports whether it did.
func (c *Controller) update(fn func(s *domain.SignupState)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.alive.Err() != nil {
		return false
	}
	fn(&c.state)
	return true
}

func snapshot(s domain.SignupState) domain.SignupState {
	if s.ErrorMessage != nil {
		s.ErrorMessage = strPtr(*s.ErrorMessage)
	}
	if s.AccessCode != nil {
		s.AccessCode = strPtr(*s.AccessCode)
	}
	if s.SupportLink != nil {
		link := *s.SupportLink
		s.SupportLink = &link
	}
	return s
}

func strPtr(s string) *string { return &s }
