package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrNoAdapter      = errors.New("adapter is nil")
)
