package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/mock"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUploadConfig = config.Upload{
	MaxFileSize:  16,
	AllowedTypes: []string{"image/jpeg", "image/png"},
}

func fixedKeys() *objectstore.KeyGenerator {
	return objectstore.NewKeyGenerator(
		func() time.Time { return time.Date(2026, 10, 16, 9, 30, 5, 0, time.UTC) },
		func() string { return "abcdef01" },
	)
}

func newTestUploadService(t *testing.T) (UploadService, *mock.MockObjectStore) {
	t.Helper()
	objects := mock.NewMockObjectStore(gomock.NewController(t))
	objects.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string {
		return publicBase + key
	}).AnyTimes()

	return NewUploadService(objects, fixedKeys(), testUploadConfig, logger.Nop()), objects
}

func TestUploadService_UploadImage(t *testing.T) {
	svc, objects := newTestUploadService(t)
	admin := models.Principal{ID: 1, Name: "admin", IsAdmin: true}
	wantKey := "dress/2026/10/20261016_093005_abcdef01.png"

	objects.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o objectstore.Object) error {
		assert.Equal(t, wantKey, o.Key)
		assert.Equal(t, "image/png", o.ContentType)
		assert.Equal(t, []byte("png-bytes"), o.Body)
		assert.Equal(t, map[string]string{
			MetadataOriginalFilename: "Gown.PNG",
			MetadataUploadedBy:       "1",
			MetadataCategory:         "dress",
		}, o.Metadata)
		return nil
	})

	got, err := svc.UploadImage(context.Background(), admin, models.ImageUpload{
		Filename:    "Gown.PNG",
		ContentType: "image/png",
		Size:        9,
		Category:    "dress",
		Body:        strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.UploadResult{
		ObjectKey:   wantKey,
		ImageURL:    publicBase + wantKey,
		ContentType: "image/png",
		Size:        9,
	}, got)
}

func TestUploadService_UploadImage_BodyLimits(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		wantErr error
	}{
		{name: "empty body", body: nil, wantErr: validators.ErrEmptyFile},
		{name: "body over limit", body: bytes.Repeat([]byte("x"), 17), wantErr: validators.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUploadService(t)

			_, err := svc.UploadImage(context.Background(), models.Principal{ID: 1}, models.ImageUpload{
				Filename:    "a.jpg",
				ContentType: "image/jpeg",
				Size:        1,
				Body:        bytes.NewReader(tt.body),
			})

			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUploadValidationService_RejectsUnsupportedType(t *testing.T) {
	svc, _ := newTestUploadService(t)
	wrapped := NewUploadValidationService(validators.NewUploadValidator(testUploadConfig)).Wrap(svc)

	_, err := wrapped.UploadImage(context.Background(), models.Principal{ID: 1}, models.ImageUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        3,
		Body:        strings.NewReader("abc"),
	})

	require.ErrorIs(t, err, validators.ErrUnsupportedContentType)
}

func TestUploadService_PresignUpload(t *testing.T) {
	svc, objects := newTestUploadService(t)
	wantKey := "general/2026/10/20261016_093005_abcdef01.jpg"
	expires := time.Date(2026, 10, 16, 10, 30, 5, 0, time.UTC)

	objects.EXPECT().PresignPut(gomock.Any(), wantKey, "image/jpeg").Return("https://signed.example/put", expires, nil)

	got, err := svc.PresignUpload(context.Background(), "photo.jpg", "")

	require.NoError(t, err)
	assert.Equal(t, models.PresignedUpload{
		UploadURL: "https://signed.example/put",
		ObjectKey: wantKey,
		ImageURL:  publicBase + wantKey,
		ExpiresAt: expires,
	}, got)
}

func TestUploadService_PresignUpload_EmptyFilename(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.PresignUpload(context.Background(), "  ", "dress")

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUploadService_DeleteImage(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		svc, objects := newTestUploadService(t)
		objects.EXPECT().Exists(gomock.Any(), "dress/a.jpg").Return(true, nil)
		objects.EXPECT().Delete(gomock.Any(), "dress/a.jpg").Return(nil)

		require.NoError(t, svc.DeleteImage(context.Background(), "/dress/a.jpg"))
	})

	t.Run("absent", func(t *testing.T) {
		svc, objects := newTestUploadService(t)
		objects.EXPECT().Exists(gomock.Any(), "dress/a.jpg").Return(false, nil)

		require.ErrorIs(t, svc.DeleteImage(context.Background(), "dress/a.jpg"), ErrImageNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		svc, _ := newTestUploadService(t)

		require.ErrorIs(t, svc.DeleteImage(context.Background(), ""), ErrInvalidInput)
	})
}

func TestUploadService_ListImages(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int32
		wantErr   error
	}{
		{name: "default", limit: 0, wantLimit: DefaultImagesLimit},
		{name: "explicit", limit: 5, wantLimit: 5},
		{name: "over max", limit: MaxImagesLimit + 1, wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, objects := newTestUploadService(t)
			if tt.wantErr == nil {
				objects.EXPECT().List(gomock.Any(), "dress/", tt.wantLimit).Return([]models.ObjectInfo{{Key: "dress/a.jpg"}}, nil)
			}

			got, err := svc.ListImages(context.Background(), "dress/", tt.limit)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

// ─────────────────────────────────────────────
// Analytics
// ─────────────────────────────────────────────

func TestAnalyticsService_Summary_NormalisesEmptyLists(t *testing.T) {
	repo := mock.NewMockAnalyticsRepository(gomock.NewController(t))
	repo.EXPECT().Summary(gomock.Any()).Return(models.Analytics{TotalUsers: 3, PendingUsers: 1, ActiveUsers: 2}, nil)

	got, err := NewAnalyticsService(repo, logger.Nop()).Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ActiveUsers)
	assert.NotNil(t, got.PopularCategories)
	assert.NotNil(t, got.RecentActivity)
}

func TestAnalyticsService_Summary_StorageDown(t *testing.T) {
	repo := mock.NewMockAnalyticsRepository(gomock.NewController(t))
	repo.EXPECT().Summary(gomock.Any()).Return(models.Analytics{}, errStorageDown)

	_, err := NewAnalyticsService(repo, logger.Nop()).Summary(context.Background())

	require.ErrorIs(t, err, errStorageDown)
}
