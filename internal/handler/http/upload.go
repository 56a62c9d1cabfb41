package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	upload, err := h.readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := h.services.ImageService.UploadProfileImage(r.Context(), user, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeUploaded(w, name)
}

func (h *Handler) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := h.services.ImageService.UploadProductImage(r.Context(), user, id, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeUploaded(w, name)
}

// readUpload reads the "file" part of a multipart request, capped at
// maxUploadSize bytes.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (models.ImageUpload, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return models.ImageUpload{}, uploadError(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return models.ImageUpload{}, uploadError(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.ImageUpload{}, uploadError(err)
	}

	return models.ImageUpload{Filename: header.Filename, Content: content}, nil
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMissingFile, err)
}

func (h *Handler) writeUploaded(w http.ResponseWriter, name string) {
	utils.WriteJSON(w, models.UploadResponse{
		Status:   models.StatusSuccess,
		Filename: h.baseURL + service.ImagesPath + name,
	}, http.StatusOK)
}
