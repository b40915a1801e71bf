// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-accounts/models"
)

// Field names of [models.Credentials] accepted by [AccountValidator.Validate].
const (
	FieldUsername = "Username"
	FieldPassword = "Password"
	FieldEmail    = "Email"
)

var knownCredentialFields = map[string]struct{}{
	FieldUsername: {},
	FieldPassword: {},
	FieldEmail:    {},
}

// AccountValidator checks account request payloads against their
// `validate` struct tags.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns a [Validator] for [models.Credentials].
// Reported field names follow the json tags.
func NewAccountValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AccountValidator{validate: validate}
}

// Validate checks obj. With no fields every tagged field is checked,
// otherwise only the listed ones.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	for _, field := range fields {
		if _, ok := knownCredentialFields[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, credentials)
	} else {
		err = v.validate.StructPartialCtx(ctx, credentials, fields...)
	}

	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}

	return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, strings.Join(missing, ", "))
}
