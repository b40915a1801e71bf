package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-accounts/internal/mock"
	"github.com/MKhiriev/go-accounts/models"
)

func newTestValidationSvc(t *testing.T) (AccountService, *mock.MockAccountService) {
	t.Helper()
	inner := mock.NewMockAccountService(gomock.NewController(t))
	return NewAccountValidationService().Wrap(inner), inner
}

func TestValidation_CreateAccount_MissingFields(t *testing.T) {
	full := models.Credentials{Username: "alice", Password: "pw1", Email: "a@x.com"}

	// every non-empty subset of {username, password, email} left out
	tests := []struct {
		name   string
		mutate func(c *models.Credentials)
	}{
		{name: "no username", mutate: func(c *models.Credentials) { c.Username = "" }},
		{name: "no password", mutate: func(c *models.Credentials) { c.Password = "" }},
		{name: "no email", mutate: func(c *models.Credentials) { c.Email = "" }},
		{name: "no username and password", mutate: func(c *models.Credentials) { c.Username, c.Password = "", "" }},
		{name: "no username and email", mutate: func(c *models.Credentials) { c.Username, c.Email = "", "" }},
		{name: "no password and email", mutate: func(c *models.Credentials) { c.Password, c.Email = "", "" }},
		{name: "nothing", mutate: func(c *models.Credentials) { *c = models.Credentials{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestValidationSvc(t)
			credentials := full
			tt.mutate(&credentials)

			_, err := svc.CreateAccount(context.Background(), credentials)

			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestValidation_CreateAccount_PassesThrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	credentials := models.Credentials{Username: "alice", Password: "pw1", Email: "a@x.com"}

	inner.EXPECT().CreateAccount(gomock.Any(), credentials).Return(models.Account{ID: 1}, nil)

	account, err := svc.CreateAccount(context.Background(), credentials)

	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
}

func TestValidation_Login_MissingFieldsAreWrongCredentials(t *testing.T) {
	for _, credentials := range []models.Credentials{
		{},
		{Username: "alice"},
		{Password: "pw1"},
	} {
		svc, _ := newTestValidationSvc(t)

		_, err := svc.Login(context.Background(), credentials)

		assert.ErrorIs(t, err, ErrWrongCredentials)
		assert.NotErrorIs(t, err, ErrMissingFields)
	}
}

func TestValidation_Login_IgnoresEmail(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	credentials := models.Credentials{Username: "alice", Password: "pw1"}

	inner.EXPECT().Login(gomock.Any(), credentials).Return(models.Token{Key: testKey}, nil)

	token, err := svc.Login(context.Background(), credentials)

	require.NoError(t, err)
	assert.Equal(t, testKey, token.Key)
}

func TestValidation_RemoveAccount(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	assert.ErrorIs(t, svc.RemoveAccount(context.Background(), models.Credentials{Username: "alice"}), ErrMissingFields)
	assert.ErrorIs(t, svc.RemoveAccount(context.Background(), models.Credentials{Password: "pw1"}), ErrMissingFields)

	credentials := models.Credentials{Username: "alice", Password: "pw1"}
	inner.EXPECT().RemoveAccount(gomock.Any(), credentials).Return(nil)
	assert.NoError(t, svc.RemoveAccount(context.Background(), credentials))
}

func TestValidation_ListAndResolve_Delegate(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().ListAccounts(gomock.Any()).Return([]models.AccountInfo{}, nil)
	inner.EXPECT().ResolveToken(gomock.Any(), testKey).Return(models.Account{ID: 9}, nil)

	infos, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, infos)

	account, err := svc.ResolveToken(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, int64(9), account.ID)
}
