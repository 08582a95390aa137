package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(gzipBytes(t, `{"username":"alice"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, `{"username":"alice"}`, got)
}

func TestWithGZip_BrokenBodyIs400(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/designs", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_ResponseCompression(t *testing.T) {
	tests := []struct {
		name         string
		accept       string
		write        func(w http.ResponseWriter)
		wantEncoding string
		wantBody     string
	}{
		{
			name:   "json compressed",
			accept: "gzip, deflate",
			write: func(w http.ResponseWriter) {
				utils.WriteJSON(w, map[string]string{"title": "Evening gown"}, http.StatusOK)
			},
			wantEncoding: "gzip",
			wantBody:     `{"title":"Evening gown"}`,
		},
		{
			name:   "plain text compressed",
			accept: "gzip",
			write: func(w http.ResponseWriter) {
				w.Header().Set("Content-Type", "text/plain")
				w.Write([]byte("1.0.0"))
			},
			wantEncoding: "gzip",
			wantBody:     "1.0.0",
		},
		{
			name:   "image passes through",
			accept: "gzip",
			write: func(w http.ResponseWriter) {
				w.Header().Set("Content-Type", "image/png")
				w.Write([]byte("png-bytes"))
			},
			wantBody: "png-bytes",
		},
		{
			name:   "client without gzip",
			accept: "",
			write: func(w http.ResponseWriter) {
				utils.WriteJSON(w, map[string]int{"total": 3}, http.StatusOK)
			},
			wantBody: `{"total":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { tt.write(w) })
			req := httptest.NewRequest(http.MethodGet, "/api/designs", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantEncoding, rr.Header().Get("Content-Encoding"))
			if tt.wantEncoding == "gzip" {
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWithGZip_NoContentIsNotCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/api/designs/1/favorite", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}
