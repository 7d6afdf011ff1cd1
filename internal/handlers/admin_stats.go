// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"districtcms/internal/models"
)

type statRequest struct {
	Label        string  `json:"label"`
	Value        string  `json:"value"`
	Unit         *string `json:"unit"`
	DisplayOrder *int    `json:"display_order"`
}

func (req *statRequest) validate() string {
	return firstError(
		requireField("Label", req.Label),
		requireField("Value", req.Value),
		checkOptional("Unit", req.Unit),
	)
}

// StatsList returns every stat for the admin table. Stats have no publish
// flag, so this is the same set the public homepage shows.
func (a *Admin) StatsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stats.List()
	if err != nil {
		slog.Error("list stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load stats.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// StatCreate inserts a new stat.
func (a *Admin) StatCreate(w http.ResponseWriter, r *http.Request) {
	var req statRequest
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
	} else if count, err := a.stats.Count(); err == nil {
		order = count
	}

	created, err := a.stats.Create(&models.Stat{
		Label:        req.Label,
		Value:        req.Value,
		Unit:         req.Unit,
		DisplayOrder: order,
	})
	if err != nil {
		slog.Error("create stat failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create stat.")
		return
	}

	a.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusCreated, created)
}

// StatUpdate overwrites an existing stat.
func (a *Admin) StatUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := a.stats.FindByID(id)
	if err != nil {
		slog.Error("find stat failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load stat.")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Stat not found.")
		return
	}

	var req statRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing.Label = req.Label
	existing.Value = req.Value
	existing.Unit = req.Unit
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if err := a.stats.Update(existing); err != nil {
		slog.Error("update stat failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update stat.")
		return
	}

	a.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusOK, existing)
}

// StatDelete removes a stat.
func (a *Admin) StatDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := a.stats.Delete(id); err != nil {
		slog.Error("delete stat failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete stat.")
		return
	}

	a.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
