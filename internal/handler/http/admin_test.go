package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_Filters(t *testing.T) {
	services := newTestServices()
	services.UserService = &fakeUserService{
		listFn: func(_ context.Context, f models.UserFilter, page query.Pagination) (models.Page[models.User], error) {
			require.NotNil(t, f.IsApproved)
			assert.False(t, *f.IsApproved)
			assert.Nil(t, f.IsAdmin)
			assert.Equal(t, query.Pagination{Page: 1, PerPage: 20}, page)
			return models.Page[models.User]{Items: []models.User{{ID: 3}}, Total: 1, Page: 1, PerPage: 20, TotalPages: 1}, nil
		},
	}

	rec := serve(newRouterHandler(services), http.MethodGet, "/api/admin/users?is_approved=false", adminHeader, nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Page[models.User]](t, rec.Body.Bytes())
	assert.Equal(t, int64(1), got.Total)
}

func TestApproveAndRejectMessages(t *testing.T) {
	services := newTestServices()
	services.UserService = &fakeUserService{
		approveFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "carol", IsApproved: true}, nil
		},
		rejectFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{}, service.ErrUserNotFound
		},
	}
	h := newRouterHandler(services)

	rec := serve(h, http.MethodPost, "/api/admin/users/4/approve", adminHeader, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User carol approved successfully", decodeBody[models.MessageResponse](t, rec.Body.Bytes()).Message)

	rec = serve(h, http.MethodPost, "/api/admin/users/4/reject", adminHeader, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody[models.ErrorResponse](t, rec.Body.Bytes()).Message)
}

func TestUpdateUser_EmptyBodyIsInvalid(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodPut, "/api/admin/users/4", adminHeader, []byte(``), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_PassesActor(t *testing.T) {
	services := newTestServices()
	services.UserService = &fakeUserService{
		deleteFn: func(_ context.Context, actor models.Principal, id int64) error {
			if actor.ID == id {
				return service.ErrCannotDeleteSelf
			}
			return nil
		},
	}
	h := newRouterHandler(services)

	rec := serve(h, http.MethodDelete, "/api/admin/users/1", adminHeader, nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot delete your own account", decodeBody[models.ErrorResponse](t, rec.Body.Bytes()).Message)

	rec = serve(h, http.MethodDelete, "/api/admin/users/2", adminHeader, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", decodeBody[models.MessageResponse](t, rec.Body.Bytes()).Message)
}

func TestAnalytics(t *testing.T) {
	services := newTestServices()
	services.AnalyticsService = &fakeAnalyticsService{
		summaryFn: func(context.Context) (models.Analytics, error) {
			return models.Analytics{TotalUsers: 4, PendingUsers: 1, ActiveUsers: 3}, nil
		},
	}

	rec := serve(newRouterHandler(services), http.MethodGet, "/api/admin/analytics", adminHeader, nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Analytics](t, rec.Body.Bytes())
	assert.Equal(t, int64(3), got.ActiveUsers)
}
