// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account request bodies before they reach the
// account service.
//
// [AccountValidator] runs go-playground/validator rules over
// [models.Credentials]. Each operation names the fields it requires
// (login and removal need username and password, creation also needs the
// email), and a failure lists the JSON names of the absent fields.
package validators

import "context"

// Validator checks value and returns an error describing what is wrong.
// When fields are given, only those struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
