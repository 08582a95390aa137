// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/models"
)

func (h *Handler) listDesigns(w http.ResponseWriter, r *http.Request) {
	page, err := h.pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	featured, err := queryBool(r, "featured")
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.DesignFilter{
		Search:         strings.TrimSpace(r.URL.Query().Get("q")),
		Category:       queryString(r, "category"),
		Style:          queryString(r, "style"),
		Colour:         queryString(r, "colour"),
		Fabric:         queryString(r, "fabric"),
		Occasion:       queryString(r, "occasion"),
		Featured:       featured,
		DesignerName:   queryString(r, "designer_name"),
		CollectionName: queryString(r, "collection_name"),
		Season:         queryString(r, "season"),
	}

	designs, err := h.services.DesignService.List(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, designs, http.StatusOK)
}

func (h *Handler) featuredDesigns(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	designs, err := h.services.DesignService.Featured(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, designs, http.StatusOK)
}

func (h *Handler) getDesign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	design, err := h.services.DesignService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, design, http.StatusOK)
}

func (h *Handler) createDesign(w http.ResponseWriter, r *http.Request) {
	var input models.DesignCreate
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	design, err := h.services.DesignService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, design, http.StatusCreated)
}

func (h *Handler) updateDesign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.DesignUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	design, err := h.services.DesignService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, design, http.StatusOK)
}

func (h *Handler) deleteDesign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DesignService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Design deleted successfully", http.StatusOK)
}

// ── favorites ───────────────────────────────────────────────────────────────

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, true)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, false)
}

func (h *Handler) changeFavorite(w http.ResponseWriter, r *http.Request, add bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if add {
		err = h.services.FavoriteService.Add(r.Context(), principal, id)
	} else {
		err = h.services.FavoriteService.Remove(r.Context(), principal, id)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	if add {
		writeMessage(w, "Design added to favorites", http.StatusOK)
		return
	}
	writeMessage(w, "Design removed from favorites", http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	designs, err := h.services.FavoriteService.List(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, designs, http.StatusOK)
}
