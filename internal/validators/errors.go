package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrRequiredFieldMissing is wrapped together with the names of the
	// fields that are absent or empty.
	ErrRequiredFieldMissing = errors.New("required field is missing")
)
