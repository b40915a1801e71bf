package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	for _, version := range []string{"1.0.0", "v1.2.3-beta+build.42"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, version, svc.GetAppVersion(ctx))
	}
}

func TestNewServices(t *testing.T) {
	storages := &store.Storages{}

	services, err := NewServices(storages, config.App{Version: "1.0.0", PasswordHashCost: 4}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.AccountService)
	assert.IsType(t, &AccountValidationService{}, services.AccountService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = NewServices(storages, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
