package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/mock"
	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type serviceMocks struct {
	auth     *mock.MockAuthService
	guard    *mock.MockOwnershipGuard
	products *mock.MockProductService
	business *mock.MockBusinessService
	images   *mock.MockImageService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		auth:     mock.NewMockAuthService(ctrl),
		guard:    mock.NewMockOwnershipGuard(ctrl),
		products: mock.NewMockProductService(ctrl),
		business: mock.NewMockBusinessService(ctrl),
		images:   mock.NewMockImageService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	h := &Handler{
		services: &service.Services{
			AuthService:     m.auth,
			OwnershipGuard:  m.guard,
			ProductService:  m.products,
			BusinessService: m.business,
			ImageService:    m.images,
			AppInfoService:  m.appInfo,
		},
		imagesDir:     t.TempDir(),
		maxUploadSize: 1 << 20,
		baseURL:       "http://localhost:8000",
		ids:           utils.NewUUIDGenerator(),
		logger:        logger.Nop(),
	}
	return h, m
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// decodeEnvelope decodes a {"status", "data"|"detail"} body.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}

var (
	alice = models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	bob   = models.User{ID: 2, Username: "bob", Email: "bob@example.com"}
)
