package service

import (
	"github.com/MKhiriev/buy-from-me/internal/adapter"
	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	OwnershipGuard  OwnershipGuard
	ProductService  ProductService
	BusinessService BusinessService
	ImageService    ImageService
	AppInfoService  AppInfoService
}

// NewServices wires every service on top of storages. cfg is copied into the
// services; nothing reads configuration afterwards.
func NewServices(storages *store.Storages, notifier adapter.Notifier, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewInputValidator()

	tokens := NewTokenService(storages.UserRepository, cfg.App, logger)
	guard := NewOwnershipGuard(tokens, storages, logger)

	auth, err := NewAuthService(storages, tokens, notifier, validator, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TokenService:    tokens,
		AuthService:     auth,
		OwnershipGuard:  guard,
		ProductService:  NewProductService(guard, storages, validator, logger),
		BusinessService: NewBusinessService(guard, storages, validator, logger),
		ImageService:    NewImageService(guard, storages, utils.NewUUIDGenerator(), cfg.Storage.Files.MaxImagePixels, validator, logger),
		AppInfoService:  appInfo,
	}, nil
}
