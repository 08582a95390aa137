// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var filter models.UserFilter
	if filter.IsApproved, err = queryBool(r, "is_approved"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.IsAdmin, err = queryBool(r, "is_admin"); err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.List(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) pendingUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.Pending(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "User deleted successfully", http.StatusOK)
}

func (h *Handler) approveUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, fmt.Sprintf("User %s approved successfully", user.Username), http.StatusOK)
}

func (h *Handler) rejectUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Reject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, fmt.Sprintf("User %s rejected successfully", user.Username), http.StatusOK)
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.AnalyticsService.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
