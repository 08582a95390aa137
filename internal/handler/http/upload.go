// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/go-chi/chi/v5"
)

// multipartOverhead is the room left for form fields and part headers
// beyond the file itself.
const multipartOverhead = 1 << 20

// listImagesResponse mirrors the shape clients of the gallery expect.
type listImagesResponse struct {
	Images []models.ObjectInfo `json:"images"`
	Count  int                 `json:"count"`
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, validators.ErrFileTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFile, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFile, err))
		return
	}
	defer file.Close()

	result, err := h.services.UploadService.UploadImage(r.Context(), principal, models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Category:    r.FormValue("category"),
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) presignedURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	upload, err := h.services.UploadService.PresignUpload(r.Context(), q.Get("filename"), q.Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}

// deleteImage takes the object key from the wildcard, slashes included.
func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UploadService.DeleteImage(r.Context(), chi.URLParam(r, "*")); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Image deleted successfully", http.StatusOK)
}

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	images, err := h.services.UploadService.ListImages(r.Context(), r.URL.Query().Get("prefix"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, listImagesResponse{Images: images, Count: len(images)}, http.StatusOK)
}
