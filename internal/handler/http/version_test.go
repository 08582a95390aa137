package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion_WritesPlainText(t *testing.T) {
	for _, path := range []string{"/api/version", "/api/version/"} {
		rec := serve(newRouterHandler(newTestServices()), http.MethodGet, path, "", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "test-version", rec.Body.String())
		assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestRoot(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodGet, "/", "", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Design Gallery API is running", decodeBody[models.MessageResponse](t, rec.Body.Bytes()).Message)
}

func TestHealth_UsesHandlerClock(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodGet, "/health", "", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.HealthResponse](t, rec.Body.Bytes())
	assert.Equal(t, "healthy", got.Status)
	assert.True(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC).Equal(got.Timestamp))
}

func TestInfo(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodGet, "/info", "", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.AppInfo](t, rec.Body.Bytes())
	assert.Equal(t, "test", got.Environment)
	assert.Equal(t, "test-version", got.Version)
}
