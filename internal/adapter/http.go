package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

type httpAccountAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAccountAdapter constructs the REST implementation of
// [AccountAdapter]. It normalises cfg.HTTPAddress into a base URL, applies
// cfg.RequestTimeout and preloads cfg.Token.
func NewHTTPAccountAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AccountAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpAccountAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /login/ and stores the returned token.
func (h *httpAccountAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var reply models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&reply).
		Post("/login/")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(reply.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return reply.Token, nil
}

func (h *httpAccountAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	return h.createAccount(ctx, h.client.R(), "/register/", credentials)
}

// AddUser requires a token set via SetToken or the adapter config.
func (h *httpAccountAdapter) AddUser(ctx context.Context, credentials models.Credentials) error {
	return h.createAccount(ctx, h.authedRequest(ctx), "/adduser/", credentials)
}

func (h *httpAccountAdapter) createAccount(ctx context.Context, req *resty.Request, path string, credentials models.Credentials) error {
	resp, err := req.
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return fmt.Errorf("create account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) ListUsers(ctx context.Context) ([]models.AccountInfo, error) {
	var accounts []models.AccountInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get("/listusers/")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if accounts == nil {
		accounts = []models.AccountInfo{}
	}
	return accounts, nil
}

func (h *httpAccountAdapter) RemoveUser(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Delete("/removeuser/")
	if err != nil {
		return fmt.Errorf("remove user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAccountAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
