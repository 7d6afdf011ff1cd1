// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// District CMS API. Routes split into the anonymous public API consumed by
// the marketing site and the session-guarded admin API behind /api/admin.
package router

import (
	"github.com/go-chi/chi/v5"

	"districtcms/internal/handlers"
	"districtcms/internal/middleware"
	"districtcms/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, loginLimiter *middleware.RateLimiter, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", handlers.Health)

	// Public read API — anonymous, published content only.
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", public.Projects)
		r.Get("/services", public.Services)
		r.Get("/collection", public.Collection)
		r.Get("/collection/categories", public.CollectionCategories)
		r.Get("/testimonials", public.Testimonials)
		r.Get("/clients", public.ClientLogos)
		r.Get("/stats", public.Stats)
		r.Get("/sections/{page}", public.Sections)

		// Admin API — CSRF-protected JSON endpoints for the panel.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.CSRF)

			// Auth endpoints — accessible without a full session.
			r.Route("/auth", func(r chi.Router) {
				r.With(loginLimiter.Middleware).Post("/login", auth.Login)
				r.Post("/logout", auth.Logout)
				r.Get("/me", auth.Me)

				// 2FA — requires auth but NOT completed 2FA.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAuth)
					r.Post("/2fa/setup", auth.TwoFASetup)
					r.Post("/2fa/verify", auth.TwoFAVerify)
				})

				// Password change needs a fully verified session.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAuth)
					r.Use(middleware.Require2FA)
					r.Post("/password", auth.ChangePassword)
				})
			})

			// Authenticated, 2FA-verified panel area. Editors and admins.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.Require2FA)
				r.Use(middleware.RequireEditor)

				r.Get("/dashboard", admin.Dashboard)

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", admin.ProjectsList)
					r.Post("/", admin.ProjectCreate)
					r.Put("/{id}", admin.ProjectUpdate)
					r.Patch("/{id}/publish", admin.ProjectPublish)
					r.Delete("/{id}", admin.ProjectDelete)
				})

				r.Route("/services", func(r chi.Router) {
					r.Get("/", admin.ServicesList)
					r.Post("/", admin.ServiceCreate)
					r.Put("/{id}", admin.ServiceUpdate)
					r.Patch("/{id}/publish", admin.ServicePublish)
					r.Delete("/{id}", admin.ServiceDelete)
				})

				r.Route("/collection", func(r chi.Router) {
					r.Get("/", admin.CollectionList)
					r.Get("/categories", admin.CollectionCategories)
					r.Post("/", admin.CollectionCreate)
					r.Put("/{id}", admin.CollectionUpdate)
					r.Patch("/{id}/publish", admin.CollectionPublish)
					r.Delete("/{id}", admin.CollectionDelete)
				})

				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", admin.TestimonialsList)
					r.Post("/", admin.TestimonialCreate)
					r.Put("/{id}", admin.TestimonialUpdate)
					r.Patch("/{id}/publish", admin.TestimonialPublish)
					r.Delete("/{id}", admin.TestimonialDelete)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Get("/", admin.ClientLogosList)
					r.Post("/", admin.ClientLogoCreate)
					r.Put("/{id}", admin.ClientLogoUpdate)
					r.Patch("/{id}/publish", admin.ClientLogoPublish)
					r.Delete("/{id}", admin.ClientLogoDelete)
				})

				r.Route("/stats", func(r chi.Router) {
					r.Get("/", admin.StatsList)
					r.Post("/", admin.StatCreate)
					r.Put("/{id}", admin.StatUpdate)
					r.Delete("/{id}", admin.StatDelete)
				})

				r.Route("/sections", func(r chi.Router) {
					r.Get("/", admin.SectionsList)
					r.Get("/page/{page}", admin.SectionsByPage)
					r.Post("/", admin.SectionSave)
					r.Put("/{id}/content", admin.SectionUpdateContent)
					r.Patch("/{id}/publish", admin.SectionPublish)
					r.Delete("/{id}", admin.SectionDelete)
				})

				r.Route("/media", func(r chi.Router) {
					r.Get("/", admin.MediaList)
					r.Post("/", admin.MediaUpload)
					r.Patch("/{id}", admin.MediaUpdateAltText)
					r.Delete("/{id}", admin.MediaDelete)
				})

				r.Post("/uploads/logo", admin.LogoUpload)
				r.Post("/uploads/video", admin.VideoUpload)

				// User management — admin only.
				r.Route("/users", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", admin.UsersList)
					r.Post("/", admin.UserCreate)
					r.Patch("/{id}/role", admin.UserUpdateRole)
					r.Delete("/{id}", admin.UserDelete)
				})
			})
		})
	})

	return r
}
