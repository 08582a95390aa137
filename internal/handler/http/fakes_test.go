package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/models"
)

// ─────────────────────────────────────────────
// Guard
// ─────────────────────────────────────────────

var (
	adminPrincipal = models.Principal{ID: 1, Name: "admin", IsAdmin: true}
	userPrincipal  = models.Principal{ID: 2, Name: "alice"}
)

const (
	adminHeader = "Bearer admin-token"
	userHeader  = "Bearer user-token"
)

// stubGuard accepts two fixed tokens.
type stubGuard struct{}

func (stubGuard) Authenticate(_ context.Context, rawHeader string) (models.Principal, error) {
	switch rawHeader {
	case adminHeader:
		return adminPrincipal, nil
	case userHeader:
		return userPrincipal, nil
	}
	return models.Principal{}, auth.ErrUnauthenticated
}

func (stubGuard) RequireAdmin(p models.Principal) (models.Principal, error) {
	if !p.IsAdmin {
		return models.Principal{}, auth.ErrForbidden
	}
	return p, nil
}

// ─────────────────────────────────────────────
// Services
// ─────────────────────────────────────────────

type fakeUserService struct {
	registerFn func(ctx context.Context, in models.UserCreate) (models.User, error)
	loginFn    func(ctx context.Context, in models.UserLogin) (models.TokenResponse, error)
	meFn       func(ctx context.Context, p models.Principal) (models.User, error)
	listFn     func(ctx context.Context, f models.UserFilter, page query.Pagination) (models.Page[models.User], error)
	pendingFn  func(ctx context.Context, page query.Pagination) (models.Page[models.User], error)
	updateFn   func(ctx context.Context, id int64, u models.UserUpdate) (models.User, error)
	approveFn  func(ctx context.Context, id int64) (models.User, error)
	rejectFn   func(ctx context.Context, id int64) (models.User, error)
	deleteFn   func(ctx context.Context, actor models.Principal, id int64) error
}

func (f *fakeUserService) Register(ctx context.Context, in models.UserCreate) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, in)
	}
	return models.User{}, nil
}

func (f *fakeUserService) Login(ctx context.Context, in models.UserLogin) (models.TokenResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, in)
	}
	return models.TokenResponse{}, nil
}

func (f *fakeUserService) Me(ctx context.Context, p models.Principal) (models.User, error) {
	if f.meFn != nil {
		return f.meFn(ctx, p)
	}
	return models.User{ID: p.ID, Username: p.Name, IsAdmin: p.IsAdmin}, nil
}

func (f *fakeUserService) List(ctx context.Context, filter models.UserFilter, page query.Pagination) (models.Page[models.User], error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter, page)
	}
	return models.Page[models.User]{Items: []models.User{}}, nil
}

func (f *fakeUserService) Pending(ctx context.Context, page query.Pagination) (models.Page[models.User], error) {
	if f.pendingFn != nil {
		return f.pendingFn(ctx, page)
	}
	return models.Page[models.User]{Items: []models.User{}}, nil
}

func (f *fakeUserService) Update(ctx context.Context, id int64, u models.UserUpdate) (models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, u)
	}
	return models.User{ID: id}, nil
}

func (f *fakeUserService) Approve(ctx context.Context, id int64) (models.User, error) {
	if f.approveFn != nil {
		return f.approveFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (f *fakeUserService) Reject(ctx context.Context, id int64) (models.User, error) {
	if f.rejectFn != nil {
		return f.rejectFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (f *fakeUserService) Delete(ctx context.Context, actor models.Principal, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, actor, id)
	}
	return nil
}

func (f *fakeUserService) EnsureAdmin(context.Context, string, string) (models.User, bool, error) {
	return models.User{}, false, nil
}

type fakeDesignService struct {
	listFn     func(ctx context.Context, f models.DesignFilter, page query.Pagination) (models.Page[models.Design], error)
	featuredFn func(ctx context.Context, limit int) ([]models.Design, error)
	getFn      func(ctx context.Context, id int64) (models.Design, error)
	createFn   func(ctx context.Context, in models.DesignCreate) (models.Design, error)
	updateFn   func(ctx context.Context, id int64, u models.DesignUpdate) (models.Design, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeDesignService) List(ctx context.Context, filter models.DesignFilter, page query.Pagination) (models.Page[models.Design], error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter, page)
	}
	return models.Page[models.Design]{Items: []models.Design{}}, nil
}

func (f *fakeDesignService) Featured(ctx context.Context, limit int) ([]models.Design, error) {
	if f.featuredFn != nil {
		return f.featuredFn(ctx, limit)
	}
	return []models.Design{}, nil
}

func (f *fakeDesignService) Get(ctx context.Context, id int64) (models.Design, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.Design{ID: id}, nil
}

func (f *fakeDesignService) Create(ctx context.Context, in models.DesignCreate) (models.Design, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return models.Design{}, nil
}

func (f *fakeDesignService) Update(ctx context.Context, id int64, u models.DesignUpdate) (models.Design, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, u)
	}
	return models.Design{ID: id}, nil
}

func (f *fakeDesignService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeFavoriteService struct {
	addFn    func(ctx context.Context, p models.Principal, id int64) error
	removeFn func(ctx context.Context, p models.Principal, id int64) error
	listFn   func(ctx context.Context, p models.Principal) ([]models.Design, error)
}

func (f *fakeFavoriteService) Add(ctx context.Context, p models.Principal, id int64) error {
	if f.addFn != nil {
		return f.addFn(ctx, p, id)
	}
	return nil
}

func (f *fakeFavoriteService) Remove(ctx context.Context, p models.Principal, id int64) error {
	if f.removeFn != nil {
		return f.removeFn(ctx, p, id)
	}
	return nil
}

func (f *fakeFavoriteService) List(ctx context.Context, p models.Principal) ([]models.Design, error) {
	if f.listFn != nil {
		return f.listFn(ctx, p)
	}
	return []models.Design{}, nil
}

type fakeUploadService struct {
	uploadFn  func(ctx context.Context, p models.Principal, u models.ImageUpload) (models.UploadResult, error)
	presignFn func(ctx context.Context, filename, category string) (models.PresignedUpload, error)
	deleteFn  func(ctx context.Context, key string) error
	listFn    func(ctx context.Context, prefix string, limit int) ([]models.ObjectInfo, error)
}

func (f *fakeUploadService) UploadImage(ctx context.Context, p models.Principal, u models.ImageUpload) (models.UploadResult, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, p, u)
	}
	return models.UploadResult{}, nil
}

func (f *fakeUploadService) PresignUpload(ctx context.Context, filename, category string) (models.PresignedUpload, error) {
	if f.presignFn != nil {
		return f.presignFn(ctx, filename, category)
	}
	return models.PresignedUpload{}, nil
}

func (f *fakeUploadService) DeleteImage(ctx context.Context, key string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, key)
	}
	return nil
}

func (f *fakeUploadService) ListImages(ctx context.Context, prefix string, limit int) ([]models.ObjectInfo, error) {
	if f.listFn != nil {
		return f.listFn(ctx, prefix, limit)
	}
	return []models.ObjectInfo{}, nil
}

type fakeAnalyticsService struct {
	summaryFn func(ctx context.Context) (models.Analytics, error)
}

func (f *fakeAnalyticsService) Summary(ctx context.Context) (models.Analytics, error) {
	if f.summaryFn != nil {
		return f.summaryFn(ctx)
	}
	return models.Analytics{}, nil
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) Info(context.Context) models.AppInfo {
	return models.AppInfo{Name: "Design Gallery", Version: f.version, Environment: "test"}
}

func (f *fakeAppInfoService) Health(_ context.Context, now time.Time) models.HealthResponse {
	return models.HealthResponse{Status: "healthy", Timestamp: now, Version: f.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testConfig = config.StructuredConfig{
	Pagination: config.Pagination{DefaultPageSize: 20, MaxPageSize: 100},
	Upload:     config.Upload{MaxFileSize: 1 << 10, AllowedTypes: []string{"image/png"}},
}

// newTestServices fills every service with a default fake.
func newTestServices() *service.Services {
	return &service.Services{
		UserService:      &fakeUserService{},
		DesignService:    &fakeDesignService{},
		FavoriteService:  &fakeFavoriteService{},
		UploadService:    &fakeUploadService{},
		AnalyticsService: &fakeAnalyticsService{},
		AppInfoService:   &fakeAppInfoService{version: "test-version"},
	}
}

func newRouterHandler(services *service.Services) *Handler {
	h := NewHandler(services, stubGuard{}, testConfig, logger.Nop())
	h.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return h
}

// serve runs one request through the full router.
func serve(h *Handler, method, target, authHeader string, body []byte, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
