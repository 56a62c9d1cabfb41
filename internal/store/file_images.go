package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/buy-from-me/internal/logger"
)

// imageFileStorage is the filesystem implementation of [ImageStorage].
// All files live flat in one directory.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage creates dir when it is missing and returns an
// [ImageStorage] writing into it.
func NewImageFileStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveImage writes content to dir/name through a temporary file and a rename,
// so readers never observe a partially written image.
func (s *imageFileStorage) SaveImage(ctx context.Context, name string, content []byte) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error creating temporary file")
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error writing image")
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error writing image: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Str("file", name).Msg("error moving image into place")
		return fmt.Errorf("error writing image: %w", err)
	}

	return nil
}

// RemoveImage deletes dir/name. A missing file is not an error.
func (s *imageFileStorage) RemoveImage(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*imageFileStorage.RemoveImage").Str("file", name).Msg("error removing image")
		return fmt.Errorf("error removing image: %w", err)
	}

	return nil
}

func (s *imageFileStorage) Dir() string {
	return s.dir
}

func (s *imageFileStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", ErrInvalidFileName
	}
	return filepath.Join(s.dir, name), nil
}
