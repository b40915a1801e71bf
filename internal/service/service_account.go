// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

// accountService is the concrete implementation of AccountService.
// It verifies credentials with a PasswordHasher and delegates persistence
// to the account and token repositories. Field presence is checked by the
// validation wrapper in front of it.
type accountService struct {
	// accountRepository creates, looks up, lists and deletes accounts.
	accountRepository store.AccountRepository

	// tokenRepository issues and resolves API tokens.
	tokenRepository store.TokenRepository

	// hasher hashes new passwords and verifies presented ones.
	hasher PasswordHasher

	// generateKey produces candidate token keys.
	generateKey func() (string, error)

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(accounts store.AccountRepository, tokens store.TokenRepository, hasher PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accounts,
		tokenRepository:   tokens,
		hasher:            hasher,
		generateKey:       utils.GenerateTokenKey,
		logger:            logger,
	}
}

// Login authenticates the account and returns its token.
//
// Returns ErrWrongCredentials if the username is unknown or the password does
// not match. Repository and key generation failures are wrapped.
func (s *accountService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindAccountByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("username", credentials.Username).Msg("login with unknown username")
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", credentials.Username).Msg("account search by username failed")
		return models.Token{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = s.verifyPassword(account, credentials.Password); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			log.Debug().Int64("id", account.ID).Msg("login with wrong password")
			return models.Token{}, ErrWrongCredentials
		}
		return models.Token{}, err
	}

	key, err := s.generateKey()
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("token key generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := s.tokenRepository.GetOrCreateToken(ctx, account.ID, key)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("token issue failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// CreateAccount stores a new account with a hashed password.
//
// Returns store.ErrAccountAlreadyExists (possibly wrapped) when the username
// or email is taken, including when a concurrent insert wins the race after
// the existence check.
func (s *accountService) CreateAccount(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	exists, err := s.accountRepository.AccountExists(ctx, credentials.Username, credentials.Email)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("account existence check failed")
		return models.Account{}, fmt.Errorf("account existence check failed: %w", err)
	}
	if exists {
		log.Debug().Str("username", credentials.Username).Msg("username or email already taken")
		return models.Account{}, store.ErrAccountAlreadyExists
	}

	account := credentials.Account()
	account.PasswordHash, err = s.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.Account{}, err
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("account created")
	return created, nil
}

// ListAccounts returns username and email of every account in storage order.
// The result is never nil.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.AccountInfo, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("account listing failed")
		return nil, fmt.Errorf("account listing failed: %w", err)
	}

	infos := make([]models.AccountInfo, 0, len(accounts))
	for _, account := range accounts {
		infos = append(infos, account.Info())
	}

	return infos, nil
}

// RemoveAccount deletes the account named by credentials after verifying
// its password.
//
// Returns store.ErrAccountNotFound (wrapped) for an unknown username and
// ErrWrongPassword on a password mismatch.
func (s *accountService) RemoveAccount(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindAccountByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("account search by username failed")
		return fmt.Errorf("account search by username failed: %w", err)
	}

	if err = s.verifyPassword(account, credentials.Password); err != nil {
		return err
	}

	if err = s.accountRepository.DeleteAccount(ctx, account.ID); err != nil {
		log.Err(err).Int64("id", account.ID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Int64("id", account.ID).Str("username", account.Username).Msg("account removed")
	return nil
}

// ResolveToken returns the account owning key, or store.ErrTokenNotFound
// (possibly wrapped).
func (s *accountService) ResolveToken(ctx context.Context, key string) (models.Account, error) {
	if key == "" {
		return models.Account{}, store.ErrTokenNotFound
	}

	account, err := s.tokenRepository.FindAccountByToken(ctx, key)
	if err != nil {
		return models.Account{}, fmt.Errorf("token resolution failed: %w", err)
	}

	return account, nil
}

func (s *accountService) verifyPassword(account models.Account, password string) error {
	err := s.hasher.Compare(account.PasswordHash, password)
	if err == nil {
		return nil
	}

	if isPasswordMismatch(err) {
		return ErrWrongPassword
	}

	s.logger.Err(err).Int64("id", account.ID).Msg("stored password hash is unusable")
	return fmt.Errorf("password verification failed: %w", err)
}
