package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/buy-from-me/models"
)

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{
		Name:         "BuyFromMe",
		Version:      "1.2.3",
		AppBuildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
	})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"BuyFromMe","version":"1.2.3","build_version":"1.2.3","build_date":"2026-10-01","build_commit":"abc123"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStaticImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	require.NoError(t, os.WriteFile(filepath.Join(h.imagesDir, "abc.png"), []byte("image-bytes"), 0o644))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/static/images/abc.png", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image-bytes", rr.Body.String())

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/static/images/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code, "directory listing must not be served")

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/static/images/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownRoute_JSONEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"error","detail":"Not Found"}`, rr.Body.String())
}

func TestMethodNotAllowed_JSONEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	rr := serve(h, httptest.NewRequest(http.MethodPatch, "/product/1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"status":"error","detail":"Method Not Allowed"}`, rr.Body.String())
}

func TestTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "my-trace")
	rr := serve(h, req)
	assert.Equal(t, "my-trace", rr.Header().Get(traceIDHeader))

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
