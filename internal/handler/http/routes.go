// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxJSONBody caps request bodies outside the upload routes.
const maxJSONBody = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service info
	router.Get("/", h.root)
	router.Get("/health", h.health)
	router.Get("/info", h.info)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Use(middleware.RequestSize(maxJSONBody))
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequestSize(maxJSONBody))

				r.Get("/auth/me", h.me)
				r.Post("/auth/logout", h.logout)

				r.Get("/designs", h.listDesigns)
				r.Get("/designs/featured", h.featuredDesigns)
				r.Get("/designs/user/favorites", h.listFavorites)
				r.Get("/designs/{id}", h.getDesign)
				r.Post("/designs/{id}/favorite", h.addFavorite)
				r.Delete("/designs/{id}/favorite", h.removeFavorite)
			})

			// admin only
			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequestSize(maxJSONBody))

					r.Post("/designs", h.createDesign)
					r.Put("/designs/{id}", h.updateDesign)
					r.Delete("/designs/{id}", h.deleteDesign)

					r.Get("/admin/users", h.listUsers)
					r.Get("/admin/users/pending", h.pendingUsers)
					r.Put("/admin/users/{id}", h.updateUser)
					r.Delete("/admin/users/{id}", h.deleteUser)
					r.Post("/admin/users/{id}/approve", h.approveUser)
					r.Post("/admin/users/{id}/reject", h.rejectUser)
					r.Get("/admin/analytics", h.analytics)

					r.Get("/upload/presigned-url", h.presignedURL)
					r.Get("/upload/images", h.listImages)
					r.Delete("/upload/image/*", h.deleteImage)
				})

				// the body limit of uploads is enforced by the handler
				r.Post("/upload/image", h.uploadImage)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
