package service

import (
	"context"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

type productService struct {
	guard              OwnershipGuard
	productRepository  store.ProductRepository
	businessRepository store.BusinessRepository
	userRepository     store.UserRepository
	validator          validators.Validator
	logger             *logger.Logger

	now func() time.Time
}

func NewProductService(guard OwnershipGuard, storages *store.Storages, validator validators.Validator, logger *logger.Logger) ProductService {
	return &productService{
		guard:              guard,
		productRepository:  storages.ProductRepository,
		businessRepository: storages.BusinessRepository,
		userRepository:     storages.UserRepository,
		validator:          validator,
		logger:             logger,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct attaches a new product to the business of current.
func (s *productService) CreateProduct(ctx context.Context, current models.User, input models.ProductInput) (models.Product, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Product{}, err
	}

	business, err := s.guard.OwnBusiness(ctx, current)
	if err != nil {
		return models.Product{}, err
	}

	product := input.Apply(models.Product{
		Image:         models.DefaultProductImage,
		DatePublished: s.now(),
		BusinessID:    business.ID,
	})

	return s.productRepository.CreateProduct(ctx, product)
}

func (s *productService) ListProducts(ctx context.Context, page models.Page) ([]models.Product, error) {
	return s.productRepository.ListProducts(ctx, page)
}

// GetProduct returns the product together with the public details of the
// business selling it and of its owner.
func (s *productService) GetProduct(ctx context.Context, id int64) (models.ProductWithBusiness, error) {
	product, err := s.productRepository.FindProductByID(ctx, id)
	if err != nil {
		return models.ProductWithBusiness{}, err
	}

	business, err := s.businessRepository.FindBusinessByID(ctx, product.BusinessID)
	if err != nil {
		return models.ProductWithBusiness{}, err
	}

	owner, err := s.userRepository.FindUserByID(ctx, business.OwnerID)
	if err != nil {
		return models.ProductWithBusiness{}, err
	}

	return models.ProductWithBusiness{
		Product: product,
		Business: models.BusinessDetails{
			Name:        business.Name,
			City:        business.City,
			Region:      business.Region,
			Description: business.Description,
			Logo:        business.Logo,
			OwnerID:     owner.ID,
			OwnerEmail:  owner.Email,
			JoinedDate:  owner.JoinDate.Format(models.JoinDateLayout),
		},
	}, nil
}

// UpdateProduct authorizes current against the product's owner before the
// input is even validated, recomputes the discount and republishes the
// product.
func (s *productService) UpdateProduct(ctx context.Context, current models.User, id int64, input models.ProductInput) (models.Product, error) {
	product, err := s.guard.AuthorizeProduct(ctx, current, id)
	if err != nil {
		return models.Product{}, err
	}

	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Product{}, err
	}

	product = input.Apply(product)
	product.DatePublished = s.now()

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, current models.User, id int64) error {
	if _, err := s.guard.AuthorizeProduct(ctx, current, id); err != nil {
		return err
	}

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Int64("user_id", current.ID).Msg("product deleted")
	return nil
}
