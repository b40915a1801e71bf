// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// account server handlers, middleware and the command-line client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Clients match on them, so the wording must not change.
package app

const (
	// MsgWrongCredentials is returned by login for an unknown username, a
	// wrong password or absent fields. The cases are not distinguished.
	MsgWrongCredentials = "Wrong Credentials"

	// MsgMissingFields is returned by account creation and removal when a
	// required field is absent or empty.
	MsgMissingFields = "Missing fields"

	// MsgUserAlreadyExists is returned when the username or the email is
	// already taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserCreated is the success message of account creation.
	MsgUserCreated = "User created"

	// MsgUserDoesNotExist is returned by account removal for an unknown
	// username.
	MsgUserDoesNotExist = "User does not exist"

	// MsgWrongPassword is returned by account removal when the password does
	// not match.
	MsgWrongPassword = "Wrong password"

	// MsgCredentialsNotProvided is returned by token-gated routes when the
	// Authorization header is absent.
	MsgCredentialsNotProvided = "Authentication credentials were not provided."

	// MsgInvalidToken is returned by token-gated routes when the
	// Authorization header is malformed or names an unknown token.
	MsgInvalidToken = "Invalid token."

	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found."

	// MsgMethodNotAllowedFormat is the format of the 405 message; the verb
	// is substituted with %q.
	MsgMethodNotAllowedFormat = "Method %q not allowed."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
