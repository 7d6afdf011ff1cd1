// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"districtcms/internal/models"
)

type testimonialRequest struct {
	ClientName   string  `json:"client_name"`
	Role         *string `json:"role"`
	Company      *string `json:"company"`
	Quote        string  `json:"quote"`
	ClientLogo   *string `json:"client_logo"`
	IsPublished  bool    `json:"is_published"`
	DisplayOrder *int    `json:"display_order"`
}

func (req *testimonialRequest) validate() string {
	return firstError(
		requireField("Client name", req.ClientName),
		requireField("Quote", req.Quote),
		checkOptional("Role", req.Role),
		checkOptional("Company", req.Company),
	)
}

// TestimonialsList returns every testimonial for the admin table.
func (a *Admin) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load testimonials.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// TestimonialCreate inserts a new testimonial.
func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else if count, err := a.testimonials.Count(); err == nil {
		order = count
	}

	created, err := a.testimonials.Create(&models.Testimonial{
		ClientName:   req.ClientName,
		Role:         req.Role,
		Company:      req.Company,
		Quote:        req.Quote,
		ClientLogo:   req.ClientLogo,
		IsPublished:  req.IsPublished,
		DisplayOrder: order,
	})
	if err != nil {
		slog.Error("create testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create testimonial.")
		return
	}

	a.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusCreated, created)
}

// TestimonialUpdate overwrites an existing testimonial.
func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.testimonials.FindByID(id)
	if err != nil {
		slog.Error("find testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load testimonial.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found.")
		return
	}

	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing.ClientName = req.ClientName
	existing.Role = req.Role
	existing.Company = req.Company
	existing.Quote = req.Quote
	existing.ClientLogo = req.ClientLogo
	existing.IsPublished = req.IsPublished
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.testimonials.Update(existing); err != nil {
		slog.Error("update testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update testimonial.")
		return
	}

	a.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusOK, existing)
}

// TestimonialPublish flips the publish flag.
func (a *Admin) TestimonialPublish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		IsPublished bool `json:"is_published"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.testimonials.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// TestimonialDelete removes a testimonial and its stored logo image.
func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.testimonials.FindByID(id)
	if err != nil {
		slog.Error("find testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load testimonial.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found.")
		return
	}

	if existing.ClientLogo != nil {
		a.deleteStoredFile(r.Context(), *existing.ClientLogo)
	}

	if err := a.testimonials.Delete(id); err != nil {
		slog.Error("delete testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete testimonial.")
		return
	}

	a.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
