package service

import "errors"

var (
	// ErrMissingFields is returned when a required request field is absent
	// or empty.
	ErrMissingFields = errors.New("missing fields")
	// ErrWrongCredentials is returned by Login for any authentication
	// failure: unknown username, wrong password or absent fields.
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrWrongPassword is returned by RemoveAccount when the password does
	// not match the account.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
