// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var input models.UserCreate
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("registration accepted")
	writeMessage(w, "Registration successful! Please wait for admin approval.", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var input models.UserLogin
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	user, err := h.services.UserService.Me(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// logout is stateless: tokens stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, "Logout successful. Please discard your access token.", http.StatusOK)
}
