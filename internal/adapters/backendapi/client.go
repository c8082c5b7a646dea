// Package backendapi talks to the hosted backend-as-a-service that owns
// accounts (auth API) and profiles (REST table API).
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Config holds the backend endpoint and credentials.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implements port.AccountBackendPort over HTTP.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backendapi: base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("backendapi: API key is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backendapi: invalid base URL: %w", err)
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: base, apiKey: cfg.APIKey, httpClient: httpClient}, nil
}

type profileDTO struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	WhatsApp    *string   `json:"whatsapp"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// authResponse covers both shapes of the auth API: a bare user, or a
// session wrapping the user.
type authResponse struct {
	userDTO
	User *userDTO `json:"user"`
}

func (r authResponse) account() *domain.Account {
	u := r.User
	if u == nil {
		u = &r.userDTO
	}
	if u.ID == "" {
		return nil
	}
	return &domain.Account{ID: u.ID, Phone: u.Phone, CreatedAt: u.CreatedAt}
}

type credentialsDTO struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type apiError struct {
	Status      int    `json:"-"`
	Code        string `json:"error_code"`
	Message     string `json:"msg"`
	Description string `json:"error_description"`
	Detail      string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend responded %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

func (c *Client) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	q := url.Values{}
	q.Set("select", "id,phone_number,whatsapp,created_at,updated_at")
	q.Set("phone_number", "eq."+phone)
	q.Set("limit", "1")

	var profiles []profileDTO
	if err := c.do(ctx, http.MethodGet, "/rest/v1/profiles", q, nil, &profiles); err != nil {
		return nil, fmt.Errorf("backendapi: failed to find profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	p := profiles[0]
	profile := &domain.Profile{
		ID:          p.ID,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.WhatsApp != nil {
		profile.WhatsApp = *p.WhatsApp
	}
	return profile, nil
}

// CreateAccount signs up phone with password. A successful response that
// carries no user yields a nil account and a nil error.
func (c *Client) CreateAccount(ctx context.Context, phone, password string) (*domain.Account, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, credentialsDTO{Phone: phone, Password: password}, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && isAlreadyRegistered(apiErr) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("backendapi: failed to create account: %w", err)
	}
	return resp.account(), nil
}

func (c *Client) CreateProfile(ctx context.Context, accountID, phone string) error {
	body := []profileDTO{{ID: accountID, PhoneNumber: phone}}
	err := c.do(ctx, http.MethodPost, "/rest/v1/profiles", nil, body, nil)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("backendapi: failed to create profile: %w", err)
	}
	return nil
}

func (c *Client) VerifyCredentials(ctx context.Context, phone, password string) (*domain.Account, error) {
	q := url.Values{}
	q.Set("grant_type", "password")

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token", q, credentialsDTO{Phone: phone, Password: password}, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("backendapi: failed to verify credentials: %w", err)
	}
	acc := resp.account()
	if acc == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}

func isAlreadyRegistered(e *apiError) bool {
	switch e.Code {
	case "user_already_exists", "phone_exists":
		return true
	}
	return e.Status == http.StatusConflict
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendAPIClient",
		"method":    method,
		"path":      path,
	})

	u := *c.baseURL
	u.Path += path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out == nil {
		req.Header.Set("Prefer", "return=minimal")
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Backend call finished", port.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apiError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		for _, alt := range []string{apiErr.Description, apiErr.Detail} {
			if apiErr.Message == "" {
				apiErr.Message = alt
			}
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
