package service

import (
	"context"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/models"
)

// ownershipGuard resolves the chain Product -> Business -> User and compares
// the terminal owner with the authenticated user. Every mutating operation
// goes through it before touching storage.
type ownershipGuard struct {
	tokens             TokenService
	businessRepository store.BusinessRepository
	productRepository  store.ProductRepository
	logger             *logger.Logger
}

func NewOwnershipGuard(tokens TokenService, storages *store.Storages, logger *logger.Logger) OwnershipGuard {
	return &ownershipGuard{
		tokens:             tokens,
		businessRepository: storages.BusinessRepository,
		productRepository:  storages.ProductRepository,
		logger:             logger,
	}
}

func (g *ownershipGuard) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return g.tokens.Verify(ctx, tokenString, models.AccessPurpose)
}

func (g *ownershipGuard) AuthorizeOwner(ownerID int64, current models.User) error {
	if current.ID == 0 || ownerID != current.ID {
		return ErrUnauthorizedAction
	}
	return nil
}

func (g *ownershipGuard) OwnBusiness(ctx context.Context, current models.User) (models.Business, error) {
	return g.businessRepository.FindBusinessByOwnerID(ctx, current.ID)
}

func (g *ownershipGuard) AuthorizeBusiness(ctx context.Context, current models.User, businessID int64) (models.Business, error) {
	business, err := g.businessRepository.FindBusinessByID(ctx, businessID)
	if err != nil {
		return models.Business{}, err
	}

	if err = g.AuthorizeOwner(business.OwnerID, current); err != nil {
		logger.FromContext(ctx).Warn().
			Int64("user_id", current.ID).
			Int64("business_id", businessID).
			Msg("unauthorized business access")
		return models.Business{}, err
	}

	return business, nil
}

func (g *ownershipGuard) AuthorizeProduct(ctx context.Context, current models.User, productID int64) (models.Product, error) {
	product, err := g.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return models.Product{}, err
	}

	if _, err = g.AuthorizeBusiness(ctx, current, product.BusinessID); err != nil {
		return models.Product{}, err
	}

	return product, nil
}
