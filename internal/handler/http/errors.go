// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the token authentication middleware when parsing
// the "Authorization" HTTP header, and by the request decoder. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not exactly "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the scheme is neither
	// "Bearer" nor "Token".
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrInvalidRequestBody is returned when a request body is neither valid
	// JSON nor a valid urlencoded form.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
