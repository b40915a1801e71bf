// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the account server.
//
// The primary abstraction is [AccountAdapter], which hides the REST protocol
// from the command-line client. Non-2xx replies are mapped by mapHTTPError to
// the sentinel errors in errors.go, wrapped together with the server's
// "error" message, so callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountAdapter defines communication with the account server.
type AccountAdapter interface {
	// SetToken stores the API token attached to token-gated requests. Login
	// calls it on success.
	SetToken(token string)

	// Token returns the stored API token, or an empty string.
	Token() string

	// Login exchanges credentials for the account's API token.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Register creates an account through open registration.
	Register(ctx context.Context, credentials models.Credentials) error

	// AddUser creates an account on behalf of the token owner.
	AddUser(ctx context.Context, credentials models.Credentials) error

	// ListUsers returns the username and email of every account.
	ListUsers(ctx context.Context) ([]models.AccountInfo, error)

	// RemoveUser deletes the account after the server checks its password.
	RemoveUser(ctx context.Context, credentials models.Credentials) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
