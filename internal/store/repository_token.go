// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] against
// the "tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken inserts key as the account token unless the account
// already owns one, then reads back whichever token is stored. Concurrent
// callers for one account therefore all observe the same token.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, accountID int64, key string) (models.Token, error) {
	log := logger.FromContext(ctx)

	insert, insertArgs, err := r.db.builder.
		Insert(models.Token{}.TableName()).
		Columns("token_key", "user_id", "created").
		Values(key, accountID, time.Now().UTC().Truncate(time.Microsecond)).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, insert, insertArgs...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error inserting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.db.builder.
		Select("token_key", "user_id", "created").
		From(models.Token{}.TableName()).
		Where(sq.Eq{"user_id": accountID}).
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.Token
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&token.Key, &token.AccountID, &token.Created); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error reading token")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, ErrTokenNotFound
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// FindAccountByToken resolves a token key to its owning account.
func (r *tokenRepository) FindAccountByToken(ctx context.Context, key string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("a.id", "a.username", "a.email", "a.password_hash", "a.date_joined").
		From("tokens t").
		Join("accounts a ON a.id = t.user_id").
		Where(sq.Eq{"t.token_key": key}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindAccountByToken").Msg("error resolving token")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}
