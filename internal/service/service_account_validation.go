package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

// AccountValidationService checks request fields before handing the call to
// the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

// Login requires username and password. Absent fields are reported as
// ErrWrongCredentials, the same as a failed authentication.
func (v *AccountValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}

	return v.inner.Login(ctx, credentials)
}

// CreateAccount requires username, password and email.
func (v *AccountValidationService) CreateAccount(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return v.inner.CreateAccount(ctx, credentials)
}

func (v *AccountValidationService) ListAccounts(ctx context.Context) ([]models.AccountInfo, error) {
	return v.inner.ListAccounts(ctx)
}

// RemoveAccount requires username and password. Email is ignored.
func (v *AccountValidationService) RemoveAccount(ctx context.Context, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return v.inner.RemoveAccount(ctx, credentials)
}

func (v *AccountValidationService) ResolveToken(ctx context.Context, key string) (models.Account, error) {
	return v.inner.ResolveToken(ctx, key)
}

func (v *AccountValidationService) Wrap(wrapper AccountService) AccountService {
	v.inner = wrapper
	return v
}
