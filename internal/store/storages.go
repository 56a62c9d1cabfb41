package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
)

// Storages groups every persistence component handed to the service layer.
type Storages struct {
	Transactor         Transactor
	UserRepository     UserRepository
	BusinessRepository BusinessRepository
	ProductRepository  ProductRepository
	ImageStorage       ImageStorage

	db *DB
}

// NewStorages connects to the configured database, applies the pending
// migrations and builds the repositories and the image storage on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageFileStorage(cfg.Files.ImagesDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Transactor:         db,
		UserRepository:     NewUserRepository(db, logger),
		BusinessRepository: NewBusinessRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		ImageStorage:       images,
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
