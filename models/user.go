// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a stored user identity.
// PasswordHash is a salted bcrypt hash and must never leave the server.
// It is computed over the SHA-256 digest of the password.
type Account struct {
	// ID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Username is the unique login of the account.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// DateJoined is the timestamp when the account was created.
	DateJoined time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Info returns the public projection of the account used by listings.
func (a Account) Info() AccountInfo {
	return AccountInfo{
		Username: a.Username,
		Email:    a.Email,
	}
}

// AccountInfo is the public, password-free view of an [Account].
type AccountInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
