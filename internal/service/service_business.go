package service

import (
	"context"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

type businessService struct {
	guard              OwnershipGuard
	businessRepository store.BusinessRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewBusinessService(guard OwnershipGuard, storages *store.Storages, validator validators.Validator, logger *logger.Logger) BusinessService {
	return &businessService{
		guard:              guard,
		businessRepository: storages.BusinessRepository,
		validator:          validator,
		logger:             logger,
	}
}

// UpdateBusiness changes the descriptive fields of a business owned by
// current. Owner and logo never change here.
func (s *businessService) UpdateBusiness(ctx context.Context, current models.User, id int64, input models.BusinessUpdate) (models.Business, error) {
	business, err := s.guard.AuthorizeBusiness(ctx, current, id)
	if err != nil {
		return models.Business{}, err
	}

	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Business{}, err
	}

	return s.businessRepository.UpdateBusiness(ctx, input.Apply(business))
}
