package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned by NewHTTPAccountAdapter for an address
	// without a host.
	ErrInvalidAddress = errors.New("invalid server address")
)
