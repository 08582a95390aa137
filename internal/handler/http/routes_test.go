package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type routeCase struct {
	method string
	path   string
}

var publicRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/health"},
	{http.MethodGet, "/info"},
	{http.MethodGet, "/api/version"},
}

var authenticatedRoutes = []routeCase{
	{http.MethodGet, "/api/auth/me"},
	{http.MethodPost, "/api/auth/logout"},
	{http.MethodGet, "/api/designs"},
	{http.MethodGet, "/api/designs/featured"},
	{http.MethodGet, "/api/designs/user/favorites"},
	{http.MethodGet, "/api/designs/3"},
	{http.MethodPost, "/api/designs/3/favorite"},
	{http.MethodDelete, "/api/designs/3/favorite"},
}

var adminRoutes = []routeCase{
	{http.MethodPost, "/api/designs"},
	{http.MethodPut, "/api/designs/3"},
	{http.MethodDelete, "/api/designs/3"},
	{http.MethodGet, "/api/admin/users"},
	{http.MethodGet, "/api/admin/users/pending"},
	{http.MethodPut, "/api/admin/users/3"},
	{http.MethodDelete, "/api/admin/users/3"},
	{http.MethodPost, "/api/admin/users/3/approve"},
	{http.MethodPost, "/api/admin/users/3/reject"},
	{http.MethodGet, "/api/admin/analytics"},
	{http.MethodPost, "/api/upload/image"},
	{http.MethodGet, "/api/upload/presigned-url"},
	{http.MethodDelete, "/api/upload/image/dress/2026/10/a.jpg"},
	{http.MethodGet, "/api/upload/images"},
}

func TestInit_PublicRoutes(t *testing.T) {
	h := newRouterHandler(newTestServices())

	for _, tc := range publicRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, "", nil, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestInit_AuthenticatedRoutesRequireToken(t *testing.T) {
	h := newRouterHandler(newTestServices())

	for _, tc := range append(append([]routeCase{}, authenticatedRoutes...), adminRoutes...) {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, "", nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = serve(h, tc.method, tc.path, "Bearer forged", nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_AdminRoutesForbidRegularUsers(t *testing.T) {
	h := newRouterHandler(newTestServices())

	for _, tc := range adminRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, userHeader, nil, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestInit_AuthenticatedRoutesReachable(t *testing.T) {
	h := newRouterHandler(newTestServices())

	for _, tc := range authenticatedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, userHeader, nil, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodGet, "/api/nonexistent", userHeader, nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ResponseCarriesTraceID(t *testing.T) {
	rec := serve(newRouterHandler(newTestServices()), http.MethodGet, "/health", "", nil, "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
