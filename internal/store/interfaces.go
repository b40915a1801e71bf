// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// AccountRepository persists accounts. Usernames and emails are unique
// across all accounts.
type AccountRepository interface {
	// CreateAccount inserts the account and returns it with ID and
	// DateJoined populated. A taken username or email yields
	// [ErrAccountAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByUsername returns [ErrAccountNotFound] for unknown
	// usernames.
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	// AccountExists reports whether any account has the username or the email.
	AccountExists(ctx context.Context, username, email string) (bool, error)
	// ListAccounts returns all accounts ordered by ascending ID.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// DeleteAccount removes the account together with its token.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// TokenRepository persists API tokens, at most one per account.
type TokenRepository interface {
	// GetOrCreateToken returns the token of the account, storing key as a
	// new token when the account has none yet.
	GetOrCreateToken(ctx context.Context, accountID int64, key string) (models.Token, error)
	// FindAccountByToken returns the owner of the token or [ErrTokenNotFound].
	FindAccountByToken(ctx context.Context, key string) (models.Account, error)
}
