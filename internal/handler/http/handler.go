package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/utils"
)

type Handler struct {
	services *service.Services

	// imagesDir is served read-only under /static/images/.
	imagesDir string
	// maxUploadSize caps multipart request bodies.
	maxUploadSize int64
	// baseURL prefixes the image URLs handed out by the upload endpoints.
	baseURL        string
	requestTimeout time.Duration

	// ids generates trace ids for requests arriving without one.
	ids *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		imagesDir:      cfg.Storage.Files.ImagesDir,
		maxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		baseURL:        strings.TrimRight(cfg.App.BaseURL, "/"),
		requestTimeout: cfg.Server.RequestTimeout,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
