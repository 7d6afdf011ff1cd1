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

type collectionItemRequest struct {
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Category         string  `json:"category"`
	ShortDescription *string `json:"short_description"`
	Dimensions       *string `json:"dimensions"`
	Materials        *string `json:"materials"`
	Price            *string `json:"price"`
	Application      *string `json:"application"`
	IsPublished      bool    `json:"is_published"`
	DisplayOrder     *int    `json:"display_order"`
}

func (req *collectionItemRequest) validate() string {
	if msg := firstError(
		requireField("Name", req.Name),
		requireField("Category", req.Category),
		checkOptional("Short description", req.ShortDescription),
		checkOptional("Dimensions", req.Dimensions),
		checkOptional("Materials", req.Materials),
		checkOptional("Price", req.Price),
		checkOptional("Application", req.Application),
	); msg != "" {
		return msg
	}
	if !models.ValidCategory(req.Category) {
		return "Category must be one of: " + strings.Join(models.CollectionCategories, ", ")
	}
	return ""
}

// CollectionList returns every collection item for the admin table.
func (a *Admin) CollectionList(w http.ResponseWriter, r *http.Request) {
	items, err := a.collection.List()
	if err != nil {
		slog.Error("list collection items failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load collection items.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// CollectionCategories returns the fixed category list for the admin form
// dropdown and the public filter bar.
func (a *Admin) CollectionCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.CollectionCategories)
}

// CollectionCreate inserts a new collection item.
func (a *Admin) CollectionCreate(w http.ResponseWriter, r *http.Request) {
	var req collectionItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = slug.Generate(req.Name)
	}
	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else if count, err := a.collection.Count(); err == nil {
		order = count
	}

	created, err := a.collection.Create(&models.CollectionItem{
		Name:             req.Name,
		Slug:             req.Slug,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		Dimensions:       req.Dimensions,
		Materials:        req.Materials,
		Price:            req.Price,
		Application:      req.Application,
		IsPublished:      req.IsPublished,
		DisplayOrder:     order,
	})
	if err != nil {
		slog.Error("create collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create collection item.")
		return
	}

	a.invalidate(r.Context(), "collection")
	writeJSON(w, http.StatusCreated, created)
}

// CollectionUpdate overwrites an existing collection item.
func (a *Admin) CollectionUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.collection.FindByID(id)
	if err != nil {
		slog.Error("find collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load collection item.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Collection item not found.")
		return
	}

	var req collectionItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = slug.Generate(req.Name)
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	existing.Category = req.Category
	existing.ShortDescription = req.ShortDescription
	existing.Dimensions = req.Dimensions
	existing.Materials = req.Materials
	existing.Price = req.Price
	existing.Application = req.Application
	existing.IsPublished = req.IsPublished
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.collection.Update(existing); err != nil {
		slog.Error("update collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update collection item.")
		return
	}

	a.invalidate(r.Context(), "collection")
	writeJSON(w, http.StatusOK, existing)
}

// CollectionPublish flips the publish flag.
func (a *Admin) CollectionPublish(w http.ResponseWriter, r *http.Request) {
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

	if err := a.collection.SetPublished(id, req.IsPublished); err != nil {
		slog.Error("publish collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update publish state.")
		return
	}

	a.invalidate(r.Context(), "collection")
	writeJSON(w, http.StatusOK, map[string]bool{"is_published": req.IsPublished})
}

// CollectionDelete removes a collection item.
func (a *Admin) CollectionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.collection.FindByID(id)
	if err != nil {
		slog.Error("find collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load collection item.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Collection item not found.")
		return
	}

	if err := a.collection.Delete(id); err != nil {
		slog.Error("delete collection item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete collection item.")
		return
	}

	a.invalidate(r.Context(), "collection")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
