// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"districtcms/internal/models"
	"districtcms/internal/slug"
)

type serviceRequest struct {
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	HeroImage        *string `json:"hero_image"`
	Icon             *string `json:"icon"`
	IsPublished      bool    `json:"is_published"`
	DisplayOrder     *int    `json:"display_order"`
}

func (req *serviceRequest) validate() string {
	return firstError(
		requireField("Title", req.Title),
		checkOptional("Short description", req.ShortDescription),
		checkLong("Long description", req.LongDescription),
	)
}

// ServicesList returns every service for the admin table.
func (a *Admin) ServicesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.services.List()
	if err != nil {
		slog.Error("list services failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load services.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// ServiceCreate inserts a new service.
func (a *Admin) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = slug.Generate(req.Title)
	}
	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else if count, err := a.services.Count(); err == nil {
		order = count
	}

	created, err := a.services.Create(&models.Service{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		HeroImage:        req.HeroImage,
		Icon:             req.Icon,
		IsPublished:      req.IsPublished,
		DisplayOrder:     order,
	})
	if err != nil {
		slog.Error("create service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create service.")
		return
	}

	a.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusCreated, created)
}

// ServiceUpdate overwrites an existing service.
func (a *Admin) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.services.FindByID(id)
	if err != nil {
		slog.Error("find service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load service.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found.")
		return
	}

	var req serviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = slug.Generate(req.Title)
	}

	existing.Title = req.Title
	existing.Slug = req.Slug
	existing.ShortDescription = req.ShortDescription
	existing.LongDescription = req.LongDescription
	existing.HeroImage = req.HeroImage
	existing.Icon = req.Icon
	existing.IsPublished = req.IsPublished
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.services.Update(existing); err != nil {
		slog.Error("update service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update service.")
		return
	}

	a.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, existing)
}

// ServicePublish flips the publish flag.
func (a *Admin) ServicePublish(w http.ResponseWriter, r *http.Request) {
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

	if err := a.services.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// ServiceDelete removes a service and its stored hero image.
func (a *Admin) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.services.FindByID(id)
	if err != nil {
		slog.Error("find service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load service.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found.")
		return
	}

	if existing.HeroImage != nil {
		a.deleteStoredFile(r.Context(), *existing.HeroImage)
	}

	if err := a.services.Delete(id); err != nil {
		slog.Error("delete service failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete service.")
		return
	}

	a.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
