package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename, contentType string, content []byte, category string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if category != "" {
		require.NoError(t, mw.WriteField("category", category))
	}
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	services := newTestServices()
	services.UploadService = &fakeUploadService{
		uploadFn: func(_ context.Context, p models.Principal, u models.ImageUpload) (models.UploadResult, error) {
			assert.Equal(t, adminPrincipal, p)
			assert.Equal(t, "gown.png", u.Filename)
			assert.Equal(t, "image/png", u.ContentType)
			assert.Equal(t, "dress", u.Category)
			body, err := io.ReadAll(u.Body)
			require.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), body)
			return models.UploadResult{ObjectKey: "dress/2026/10/k.png", Size: int64(len(body))}, nil
		},
	}
	body, contentType := multipartBody(t, "gown.png", "image/png", []byte("png-bytes"), "dress")

	rec := serve(newRouterHandler(services), http.MethodPost, "/api/upload/image", adminHeader, body.Bytes(), contentType)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[models.UploadResult](t, rec.Body.Bytes())
	assert.Equal(t, "dress/2026/10/k.png", got.ObjectKey)
}

func TestUploadImage_MissingFile(t *testing.T) {
	body, contentType := multipartBody(t, "", "", nil, "dress")

	rec := serve(newRouterHandler(newTestServices()), http.MethodPost, "/api/upload/image", adminHeader, body.Bytes(), contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImage_BodyOverLimit(t *testing.T) {
	h := newRouterHandler(newTestServices())
	h.maxUploadSize = 16
	body, contentType := multipartBody(t, "big.png", "image/png", bytes.Repeat([]byte("x"), multipartOverhead+64), "")

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", adminHeader)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[models.ErrorResponse](t, rec.Body.Bytes()).Message, "too large")
}

func TestUploadImage_ServiceRejection(t *testing.T) {
	services := newTestServices()
	services.UploadService = &fakeUploadService{
		uploadFn: func(context.Context, models.Principal, models.ImageUpload) (models.UploadResult, error) {
			return models.UploadResult{}, validators.ErrUnsupportedContentType
		},
	}
	body, contentType := multipartBody(t, "notes.txt", "text/plain", []byte("abc"), "")

	rec := serve(newRouterHandler(services), http.MethodPost, "/api/upload/image", adminHeader, body.Bytes(), contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresignedURL(t *testing.T) {
	expires := time.Date(2026, 10, 16, 13, 0, 0, 0, time.UTC)
	services := newTestServices()
	services.UploadService = &fakeUploadService{
		presignFn: func(_ context.Context, filename, category string) (models.PresignedUpload, error) {
			assert.Equal(t, "gown.jpg", filename)
			assert.Equal(t, "dress", category)
			return models.PresignedUpload{UploadURL: "https://signed", ObjectKey: "dress/k.jpg", ExpiresAt: expires}, nil
		},
	}

	rec := serve(newRouterHandler(services), http.MethodGet, "/api/upload/presigned-url?filename=gown.jpg&category=dress", adminHeader, nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.PresignedUpload](t, rec.Body.Bytes())
	assert.Equal(t, "https://signed", got.UploadURL)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestDeleteImage_KeyWithSlashes(t *testing.T) {
	services := newTestServices()
	services.UploadService = &fakeUploadService{
		deleteFn: func(_ context.Context, key string) error {
			if key == "dress/2026/10/a.jpg" {
				return nil
			}
			return service.ErrImageNotFound
		},
	}
	h := newRouterHandler(services)

	rec := serve(h, http.MethodDelete, "/api/upload/image/dress/2026/10/a.jpg", adminHeader, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Image deleted successfully", decodeBody[models.MessageResponse](t, rec.Body.Bytes()).Message)

	rec = serve(h, http.MethodDelete, "/api/upload/image/other.jpg", adminHeader, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListImages(t *testing.T) {
	services := newTestServices()
	services.UploadService = &fakeUploadService{
		listFn: func(_ context.Context, prefix string, limit int) ([]models.ObjectInfo, error) {
			assert.Equal(t, "dress/", prefix)
			assert.Equal(t, 2, limit)
			return []models.ObjectInfo{{Key: "dress/a.jpg"}, {Key: "dress/b.jpg"}}, nil
		},
	}

	rec := serve(newRouterHandler(services), http.MethodGet, "/api/upload/images?prefix=dress/&limit=2", adminHeader, nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[listImagesResponse](t, rec.Body.Bytes())
	assert.Equal(t, 2, got.Count)
	assert.Len(t, got.Images, 2)
}
