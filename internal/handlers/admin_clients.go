// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"districtcms/internal/models"
)

// clientLogoRequest carries the create/update shape. IsPublished defaults
// to true when omitted — logos are added to be shown.
type clientLogoRequest struct {
	ClientName   string  `json:"client_name"`
	LogoURL      string  `json:"logo_url"`
	WebsiteURL   *string `json:"website_url"`
	IsPublished  *bool   `json:"is_published"`
	DisplayOrder *int    `json:"display_order"`
}

func (req *clientLogoRequest) validate() string {
	return firstError(
		requireField("Client name", req.ClientName),
		requireField("Logo URL", req.LogoURL),
		checkOptional("Website URL", req.WebsiteURL),
	)
}

// ClientLogosList returns every client logo for the admin table.
func (a *Admin) ClientLogosList(w http.ResponseWriter, r *http.Request) {
	items, err := a.clientLogos.List()
	if err != nil {
		slog.Error("list client logos failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load client logos.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// ClientLogoCreate inserts a new client logo.
func (a *Admin) ClientLogoCreate(w http.ResponseWriter, r *http.Request) {
	var req clientLogoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}
	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else if count, err := a.clientLogos.Count(); err == nil {
		order = count
	}

	created, err := a.clientLogos.Create(&models.ClientLogo{
		ClientName:   req.ClientName,
		LogoURL:      req.LogoURL,
		WebsiteURL:   req.WebsiteURL,
		IsPublished:  published,
		DisplayOrder: order,
	})
	if err != nil {
		slog.Error("create client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create client logo.")
		return
	}

	a.invalidate(r.Context(), "clients")
	writeJSON(w, http.StatusCreated, created)
}

// ClientLogoUpdate overwrites an existing client logo.
func (a *Admin) ClientLogoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.clientLogos.FindByID(id)
	if err != nil {
		slog.Error("find client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load client logo.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Client logo not found.")
		return
	}

	var req clientLogoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing.ClientName = req.ClientName
	existing.LogoURL = req.LogoURL
	existing.WebsiteURL = req.WebsiteURL
	if req.IsPublished != nil {
		existing.IsPublished = *req.IsPublished
	}
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.clientLogos.Update(existing); err != nil {
		slog.Error("update client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update client logo.")
		return
	}

	a.invalidate(r.Context(), "clients")
	writeJSON(w, http.StatusOK, existing)
}

// ClientLogoPublish flips the publish flag.
func (a *Admin) ClientLogoPublish(w http.ResponseWriter, r *http.Request) {
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

	if err := a.clientLogos.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidate(r.Context(), "clients")
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// ClientLogoDelete removes a client logo row and its stored image.
func (a *Admin) ClientLogoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.clientLogos.FindByID(id)
	if err != nil {
		slog.Error("find client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load client logo.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Client logo not found.")
		return
	}

	a.deleteStoredFile(r.Context(), existing.LogoURL)

	if err := a.clientLogos.Delete(id); err != nil {
		slog.Error("delete client logo failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete client logo.")
		return
	}

	a.invalidate(r.Context(), "clients")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
