// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse is returned when an account has been created.
type SuccessResponse struct {
	Success string `json:"success"`
}

// ErrorResponse is the body of every error reply. Clients match on the
// exact Error text, so its wording is part of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
