package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUploadProfileImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	content := []byte("\x89PNG fake")
	m.guard.EXPECT().CurrentUser(gomock.Any(), "access").Return(alice, nil)
	m.images.EXPECT().UploadProfileImage(gomock.Any(), alice, models.ImageUpload{Filename: "logo.png", Content: content}).
		Return("abc.png", nil)

	rr := serve(h, withBearer(multipartRequest(t, "/upload-file/profile", "file", "logo.png", content), "access"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","filename":"http://localhost:8000/static/images/abc.png"}`, rr.Body.String())
}

func TestUploadProfileImage_DisallowedExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	m.guard.EXPECT().CurrentUser(gomock.Any(), "access").Return(alice, nil)
	m.images.EXPECT().UploadProfileImage(gomock.Any(), alice, gomock.Any()).Return("", validators.ErrInvalidFileExtension)

	rr := serve(h, withBearer(multipartRequest(t, "/upload-file/profile", "file", "photo.gif", []byte("GIF89a")), "access"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"error","detail":"File extension is not allowed."}`, rr.Body.String())
}

func TestUploadProductImage_NonOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	m.guard.EXPECT().CurrentUser(gomock.Any(), "bob-token").Return(bob, nil)
	m.images.EXPECT().UploadProductImage(gomock.Any(), bob, int64(5), gomock.Any()).Return("", service.ErrUnauthorizedAction)

	rr := serve(h, withBearer(multipartRequest(t, "/upload-file/product/5", "file", "mug.png", []byte("x")), "bob-token"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpload_MissingFilePart(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	m.guard.EXPECT().CurrentUser(gomock.Any(), "access").Return(alice, nil)

	rr := serve(h, withBearer(multipartRequest(t, "/upload-file/profile", "", "", nil), "access"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	h.maxUploadSize = 1024

	m.guard.EXPECT().CurrentUser(gomock.Any(), "access").Return(alice, nil)

	content := bytes.Repeat([]byte("a"), 4096)
	rr := serve(h, withBearer(multipartRequest(t, "/upload-file/profile", "file", "big.png", content), "access"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
