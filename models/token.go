// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an opaque bearer credential owned by exactly one [Account].
//
// A token is created lazily on the first successful login, reused by every
// subsequent login of the same account, and removed together with the
// account. Tokens do not expire.
type Token struct {
	// Key is the opaque random string presented by clients in the
	// "Authorization" header.
	Key string `json:"token"`

	// AccountID is the identifier of the owning account.
	AccountID int64 `json:"-"`

	// Created is the moment the token was issued.
	Created time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// String returns the token key.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Key
}
