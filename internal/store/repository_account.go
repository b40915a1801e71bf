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

var accountColumns = []string{"id", "username", "email", "password_hash", "date_joined"}

// accountRepository is the SQL implementation of [AccountRepository]
// against the "accounts" table. It works with both PostgreSQL and SQLite;
// dialect differences are absorbed by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with the
// server-assigned ID and DateJoined.
//
// Error handling:
//   - unique constraint violation on username or email → [ErrAccountAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.DateJoined = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.builder.
		Insert(account.TableName()).
		Columns("username", "email", "password_hash", "date_joined").
		Values(account.Username, account.Email, account.PasswordHash, account.DateJoined).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Msg("account already exists")
			return models.Account{}, ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// FindAccountByUsername retrieves the account with the given username.
//
// Error handling:
//   - no matching row → [ErrAccountNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// AccountExists reports whether the username or the email is already taken.
func (r *accountRepository) AccountExists(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.Account{}.TableName()).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*accountRepository.AccountExists").Msg("error counting accounts")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// ListAccounts returns every account ordered by ascending ID. An empty
// table yields an empty, non-nil slice.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error scanning account")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error iterating accounts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// DeleteAccount removes the account and its token in one transaction.
// Returns [ErrAccountNotFound] when no account has the ID.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	deleteToken, tokenArgs, err := r.db.builder.
		Delete(models.Token{}.TableName()).
		Where(sq.Eq{"user_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteAccount, accountArgs, err := r.db.builder.
		Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteToken, tokenArgs...); err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteAccount, accountArgs...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.DateJoined)
	return account, err
}
