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

// projectRequest is the JSON body for project create/update. The form
// always submits the full shape.
type projectRequest struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Location     *string `json:"location"`
	ClientName   *string `json:"client_name"`
	ProjectType  *string `json:"project_type"`
	Description  *string `json:"description"`
	HeroImage    *string `json:"hero_image"`
	VideoURL     *string `json:"video_url"`
	IsPublished  bool    `json:"is_published"`
	DisplayOrder *int    `json:"display_order"`
}

func (req *projectRequest) validate() string {
	return firstError(
		requireField("Title", req.Title),
		checkOptional("Location", req.Location),
		checkOptional("Client name", req.ClientName),
		checkOptional("Project type", req.ProjectType),
		checkLong("Description", req.Description),
	)
}

// ProjectsList returns every project for the admin table, drafts included.
func (a *Admin) ProjectsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.projects.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load projects.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// ProjectCreate inserts a new project. A blank slug is derived from the
// title; a missing display_order defaults to the current record count, so
// new records land at the end without renumbering anything.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
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
	} else if count, err := a.projects.Count(); err == nil {
		order = count
	}

	created, err := a.projects.Create(&models.Project{
		Title:        req.Title,
		Slug:         req.Slug,
		Location:     req.Location,
		ClientName:   req.ClientName,
		ProjectType:  req.ProjectType,
		Description:  req.Description,
		HeroImage:    req.HeroImage,
		VideoURL:     req.VideoURL,
		IsPublished:  req.IsPublished,
		DisplayOrder: order,
	})
	if err != nil {
		slog.Error("create project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create project.")
		return
	}

	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusCreated, created)
}

// ProjectUpdate overwrites an existing project.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	var req projectRequest
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
	existing.Location = req.Location
	existing.ClientName = req.ClientName
	existing.ProjectType = req.ProjectType
	existing.Description = req.Description
	existing.HeroImage = req.HeroImage
	existing.VideoURL = req.VideoURL
	existing.IsPublished = req.IsPublished
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.projects.Update(existing); err != nil {
		slog.Error("update project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update project.")
		return
	}

	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, existing)
}

// ProjectPublish flips the publish flag without touching any other field.
func (a *Admin) ProjectPublish(w http.ResponseWriter, r *http.Request) {
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

	if err := a.projects.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// ProjectDelete removes a project. Stored hero image and video are removed
// from object storage best-effort before the row goes.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	if existing.HeroImage != nil {
		a.deleteStoredFile(r.Context(), *existing.HeroImage)
	}
	if existing.VideoURL != nil {
		a.deleteStoredFile(r.Context(), *existing.VideoURL)
	}

	if err := a.projects.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete project.")
		return
	}

	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
