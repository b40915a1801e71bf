// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the [PasswordHasher] backed by bcrypt. The salt is
// generated per hash and stored inside it.
//
// Passwords are reduced to a base64 SHA-256 digest before bcrypt sees them,
// so passwords of any length are accepted and every byte counts.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt [PasswordHasher] with the given cost.
func NewBcryptHasher(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
}

// prehash returns the 44-byte base64 form of the SHA-256 digest, well under
// bcrypt's 72-byte input limit and free of NUL bytes.
func prehash(password string) []byte {
	digest := sha256.Sum256([]byte(password))
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest[:])
	return encoded
}

// isPasswordMismatch separates a wrong password from a malformed hash.
func isPasswordMismatch(err error) bool {
	return errors.Is(err, bcrypt.ErrMismatchedHashAndPassword)
}
