package store

import (
	"context"

	"github.com/MKhiriev/buy-from-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a unit of work inside one database transaction.
//
// Repositories called with the context passed to fn join the transaction.
// fn returning an error rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user (Password must already be a digest) and returns
	// it with ID and JoinDate populated. A duplicate username or email yields
	// [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// MarkUserVerified flips is_verified of an unverified user and reports
	// whether this call performed the transition.
	MarkUserVerified(ctx context.Context, id int64) (bool, error)
}

// BusinessRepository persists businesses. Every user owns exactly one.
type BusinessRepository interface {
	CreateBusiness(ctx context.Context, business models.Business) (models.Business, error)
	FindBusinessByID(ctx context.Context, id int64) (models.Business, error)
	FindBusinessByOwnerID(ctx context.Context, ownerID int64) (models.Business, error)
	// UpdateBusiness stores the descriptive fields of business. Owner and
	// logo are left untouched.
	UpdateBusiness(ctx context.Context, business models.Business) (models.Business, error)
	UpdateBusinessLogo(ctx context.Context, id int64, logo string) error
}

// ProductRepository persists products.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, page models.Page) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProductImage(ctx context.Context, id int64, image string) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ImageStorage keeps uploaded image files.
type ImageStorage interface {
	// SaveImage writes content under name, replacing an existing file.
	SaveImage(ctx context.Context, name string, content []byte) error
	RemoveImage(ctx context.Context, name string) error
	// Dir is the directory images are served from.
	Dir() string
}

// ErrorClassificator recognises driver specific constraint violations.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}
