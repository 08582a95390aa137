// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// queryInt returns 0 for an absent parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return v, nil
}

// queryBool returns nil for an absent parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return &v, nil
}

// queryString returns nil for an absent or blank parameter.
func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// pagination reads page and per_page and clamps them to the configured bounds.
func (h *Handler) pagination(r *http.Request) (query.Pagination, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return query.Pagination{}, err
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		return query.Pagination{}, err
	}

	return query.NewPagination(page, perPage, h.pageConfig.DefaultPageSize, h.pageConfig.MaxPageSize), nil
}
