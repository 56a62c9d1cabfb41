package service

import (
	"context"

	"github.com/MKhiriev/buy-from-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User, purpose models.TokenPurpose) (models.Token, error)
	// Verify returns the live user the token was issued for. Every failure
	// is reported as ErrInvalidCredential.
	Verify(ctx context.Context, tokenString string, purpose models.TokenPurpose) (models.User, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegistrationRequest) (models.User, error)
	// Authenticate reports false for an unknown username or a wrong password
	// and returns an error only for system failures.
	Authenticate(ctx context.Context, username, password string) (models.User, bool, error)
	Login(ctx context.Context, username, password string) (models.Token, error)
	// VerifyEmail reports whether this call flipped the verification flag.
	VerifyEmail(ctx context.Context, tokenString string) (models.User, bool, error)
	ResendVerification(ctx context.Context, current models.User) error
	Profile(ctx context.Context, current models.User) (models.Profile, error)
}

// OwnershipGuard separates "who are you" (CurrentUser) from "are you
// allowed" (the Authorize methods).
type OwnershipGuard interface {
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
	AuthorizeOwner(ownerID int64, current models.User) error
	OwnBusiness(ctx context.Context, current models.User) (models.Business, error)
	AuthorizeBusiness(ctx context.Context, current models.User, businessID int64) (models.Business, error)
	AuthorizeProduct(ctx context.Context, current models.User, productID int64) (models.Product, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, current models.User, input models.ProductInput) (models.Product, error)
	ListProducts(ctx context.Context, page models.Page) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.ProductWithBusiness, error)
	UpdateProduct(ctx context.Context, current models.User, id int64, input models.ProductInput) (models.Product, error)
	DeleteProduct(ctx context.Context, current models.User, id int64) error
}

type BusinessService interface {
	UpdateBusiness(ctx context.Context, current models.User, id int64, input models.BusinessUpdate) (models.Business, error)
}

type ImageService interface {
	UploadProfileImage(ctx context.Context, current models.User, upload models.ImageUpload) (string, error)
	UploadProductImage(ctx context.Context, current models.User, productID int64, upload models.ImageUpload) (string, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// FileNamer generates collision resistant names for stored files.
type FileNamer interface {
	FileName(ext string) string
}
