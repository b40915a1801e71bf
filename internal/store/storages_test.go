// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "mysql", DSN: "x"},
	}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_SQLiteFileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")

	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: path},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.FileExists(t, path)
}

func TestStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}

func TestSQLite_AccountLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.AccountRepository.CreateAccount(ctx, models.Account{Username: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	bob, err := s.AccountRepository.CreateAccount(ctx, models.Account{Username: "bob", Email: "b@x.com", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Less(t, alice.ID, bob.ID)

	// username and email are unique independently
	_, err = s.AccountRepository.CreateAccount(ctx, models.Account{Username: "alice", Email: "other@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	_, err = s.AccountRepository.CreateAccount(ctx, models.Account{Username: "other", Email: "b@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)

	exists, err := s.AccountRepository.AccountExists(ctx, "nobody", "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = s.AccountRepository.AccountExists(ctx, "nobody", "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := s.AccountRepository.FindAccountByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "h1", found.PasswordHash)
	assert.False(t, found.DateJoined.IsZero())

	list, err := s.AccountRepository.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)

	token, err := s.TokenRepository.GetOrCreateToken(ctx, alice.ID, "key-one")
	require.NoError(t, err)
	again, err := s.TokenRepository.GetOrCreateToken(ctx, alice.ID, "key-two")
	require.NoError(t, err)
	assert.Equal(t, "key-one", token.Key)
	assert.Equal(t, token.Key, again.Key)

	owner, err := s.TokenRepository.FindAccountByToken(ctx, "key-one")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner.Username)

	require.NoError(t, s.AccountRepository.DeleteAccount(ctx, alice.ID))
	assert.ErrorIs(t, s.AccountRepository.DeleteAccount(ctx, alice.ID), ErrAccountNotFound)

	_, err = s.TokenRepository.FindAccountByToken(ctx, "key-one")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = s.AccountRepository.FindAccountByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	list, err = s.AccountRepository.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Username)
}
