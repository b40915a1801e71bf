package service

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	accountService := NewAccountService(
		storages.AccountRepository,
		storages.TokenRepository,
		NewBcryptHasher(cfg.PasswordHashCost),
		logger,
	)

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accountService),
		AppInfoService: appInfoService,
	}, nil
}
