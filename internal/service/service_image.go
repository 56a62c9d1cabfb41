package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/metrics"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

// ImageSize is the edge length every stored image is resized to.
const ImageSize = 200

const (
	targetProfile = "profile"
	targetProduct = "product"
)

type imageService struct {
	guard              OwnershipGuard
	businessRepository store.BusinessRepository
	productRepository  store.ProductRepository
	images             store.ImageStorage
	namer              FileNamer
	// maxPixels caps the decoded size of an upload.
	maxPixels int64
	validator          validators.Validator
	logger             *logger.Logger
}

func NewImageService(guard OwnershipGuard, storages *store.Storages, namer FileNamer, maxPixels int64, validator validators.Validator, logger *logger.Logger) ImageService {
	return &imageService{
		guard:              guard,
		businessRepository: storages.BusinessRepository,
		productRepository:  storages.ProductRepository,
		images:             storages.ImageStorage,
		namer:              namer,
		maxPixels:          maxPixels,
		validator:          validator,
		logger:             logger,
	}
}

// UploadProfileImage stores upload as the logo of current's business.
func (s *imageService) UploadProfileImage(ctx context.Context, current models.User, upload models.ImageUpload) (name string, err error) {
	defer func() {
		metrics.ImageUploadsTotal.WithLabelValues(targetProfile, metrics.Result(err)).Inc()
	}()

	if err = s.validator.Validate(ctx, upload); err != nil {
		return "", err
	}

	business, err := s.guard.OwnBusiness(ctx, current)
	if err != nil {
		return "", err
	}
	if err = s.guard.AuthorizeOwner(business.OwnerID, current); err != nil {
		return "", err
	}

	if name, err = s.store(ctx, upload); err != nil {
		return "", err
	}

	if err = s.businessRepository.UpdateBusinessLogo(ctx, business.ID, name); err != nil {
		s.discard(ctx, name)
		return "", err
	}

	return name, nil
}

// UploadProductImage stores upload as the image of a product owned by
// current.
func (s *imageService) UploadProductImage(ctx context.Context, current models.User, productID int64, upload models.ImageUpload) (name string, err error) {
	defer func() {
		metrics.ImageUploadsTotal.WithLabelValues(targetProduct, metrics.Result(err)).Inc()
	}()

	if err = s.validator.Validate(ctx, upload); err != nil {
		return "", err
	}

	if _, err = s.guard.AuthorizeProduct(ctx, current, productID); err != nil {
		return "", err
	}

	if name, err = s.store(ctx, upload); err != nil {
		return "", err
	}

	if err = s.productRepository.UpdateProductImage(ctx, productID, name); err != nil {
		s.discard(ctx, name)
		return "", err
	}

	return name, nil
}

// store writes the raw upload under a random name, then overwrites it with
// the resized version. Content that does not decode as an image, or declares
// more pixels than allowed, is removed again and reported as ErrInvalidImage.
func (s *imageService) store(ctx context.Context, upload models.ImageUpload) (string, error) {
	ext := upload.Extension()
	name := s.namer.FileName(ext)

	if err := s.images.SaveImage(ctx, name, upload.Content); err != nil {
		return "", err
	}

	resized, err := utils.ResizeImage(upload.Content, ext, ImageSize, ImageSize, s.maxPixels)
	if err != nil {
		s.discard(ctx, name)
		return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	if err = s.images.SaveImage(ctx, name, resized); err != nil {
		s.discard(ctx, name)
		return "", err
	}

	return name, nil
}

func (s *imageService) discard(ctx context.Context, name string) {
	if err := s.images.RemoveImage(ctx, name); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageService.discard").Str("file", name).Msg("error removing orphaned image")
	}
}
