// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"districtcms/internal/models"
)

type sectionRequest struct {
	SectionKey  string               `json:"section_key"`
	SectionName string               `json:"section_name"`
	Page        string               `json:"page"`
	Content     models.SectionFields `json:"content"`
	IsPublished *bool                `json:"is_published"`
}

func (req *sectionRequest) validate() string {
	if msg := firstError(
		requireField("Section key", req.SectionKey),
		requireField("Section name", req.SectionName),
		requireField("Page", req.Page),
	); msg != "" {
		return msg
	}
	if !models.ValidPage(req.Page) {
		return "Page must be one of: " + strings.Join(models.SectionPages, ", ")
	}
	return ""
}

// SectionsList returns every section across all pages for the admin editor.
func (a *Admin) SectionsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.sections.List()
	if err != nil {
		slog.Error("list sections failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load sections.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// SectionsByPage returns one page's sections, drafts included.
func (a *Admin) SectionsByPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !models.ValidPage(page) {
		writeError(w, http.StatusNotFound, "Unknown page.")
		return
	}

	items, err := a.sections.ListByPage(page)
	if err != nil {
		slog.Error("list sections by page failed", "page", page, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load sections.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// SectionSave creates or replaces a section keyed by (page, section_key).
// The editor always saves whole sections, so there is no patch path.
func (a *Admin) SectionSave(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
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
	if req.Content == nil {
		req.Content = models.SectionFields{}
	}

	saved, err := a.sections.Upsert(&models.SectionContent{
		SectionKey:  req.SectionKey,
		SectionName: req.SectionName,
		Page:        req.Page,
		Content:     req.Content,
		IsPublished: published,
	})
	if err != nil {
		slog.Error("save section failed", "page", req.Page, "key", req.SectionKey, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save section.")
		return
	}

	// Section payloads are cached per page, so drop everything.
	a.invalidateAll(r.Context())
	writeJSON(w, http.StatusOK, saved)
}

// SectionUpdateContent replaces only a section's content map.
func (a *Admin) SectionUpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.sections.FindByID(id)
	if err != nil {
		slog.Error("find section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load section.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Section not found.")
		return
	}

	var req struct {
		Content models.SectionFields `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == nil {
		req.Content = models.SectionFields{}
	}

	if err := a.sections.UpdateContent(id, req.Content); err != nil {
		slog.Error("update section content failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update section.")
		return
	}

	existing.Content = req.Content
	a.invalidateAll(r.Context())
	writeJSON(w, http.StatusOK, existing)
}

// SectionPublish flips the publish flag.
func (a *Admin) SectionPublish(w http.ResponseWriter, r *http.Request) {
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

	if err := a.sections.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// SectionDelete removes a section.
func (a *Admin) SectionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := a.sections.Delete(id); err != nil {
		slog.Error("delete section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete section.")
		return
	}

	a.invalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
