package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// AccountService implements the account operations exposed over HTTP.
type AccountService interface {
	// Login exchanges a username and password for the account's API token,
	// creating the token on first use.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// CreateAccount registers a new account. Shared by open registration
	// and token-gated user addition.
	CreateAccount(ctx context.Context, credentials models.Credentials) (models.Account, error)
	// ListAccounts returns the public view of every account.
	ListAccounts(ctx context.Context) ([]models.AccountInfo, error)
	// RemoveAccount deletes an account after checking its password.
	RemoveAccount(ctx context.Context, credentials models.Credentials) error
	// ResolveToken returns the account owning the token key.
	ResolveToken(ctx context.Context, key string) (models.Account, error)
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
