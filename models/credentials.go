// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the flat request body shared by the login, register,
// adduser and removeuser endpoints. Absent fields decode to empty strings.
//
// Which fields are required depends on the operation, so the validate tags
// are applied selectively (see validators.AccountValidator).
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required"`
}

// Account converts the credentials into an [Account] without a password
// hash. The caller is responsible for hashing Password.
func (c Credentials) Account() Account {
	return Account{
		Username: c.Username,
		Email:    c.Email,
	}
}
