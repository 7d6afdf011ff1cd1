// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the District CMS API.
// Handlers are grouped by concern (admin, public, auth) and receive their
// dependencies through the handler struct. Admin handlers speak JSON only;
// the panel UI is a separate client-side application.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"districtcms/internal/cache"
	"districtcms/internal/storage"
	"districtcms/internal/store"
)

// Admin groups all admin API handlers and their dependencies.
type Admin struct {
	projects      *store.ProjectStore
	services      *store.ServiceStore
	collection    *store.CollectionItemStore
	testimonials  *store.TestimonialStore
	clientLogos   *store.ClientLogoStore
	stats         *store.StatStore
	media         *store.MediaStore
	sections      *store.SectionStore
	users         *store.UserStore
	storageClient *storage.Client
	listCache     *cache.ListCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured; listCache may be nil
// if Valkey is not configured.
func NewAdmin(
	projects *store.ProjectStore,
	services *store.ServiceStore,
	collection *store.CollectionItemStore,
	testimonials *store.TestimonialStore,
	clientLogos *store.ClientLogoStore,
	stats *store.StatStore,
	media *store.MediaStore,
	sections *store.SectionStore,
	users *store.UserStore,
	storageClient *storage.Client,
	listCache *cache.ListCache,
) *Admin {
	return &Admin{
		projects:      projects,
		services:      services,
		collection:    collection,
		testimonials:  testimonials,
		clientLogos:   clientLogos,
		stats:         stats,
		media:         media,
		sections:      sections,
		users:         users,
		storageClient: storageClient,
		listCache:     listCache,
	}
}

// Dashboard returns record counts for the admin landing page.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	projectCount, _ := a.projects.Count()
	serviceCount, _ := a.services.Count()
	itemCount, _ := a.collection.Count()
	testimonialCount, _ := a.testimonials.Count()
	logoCount, _ := a.clientLogos.Count()
	statCount, _ := a.stats.Count()
	mediaCount, _ := a.media.Count()

	writeJSON(w, http.StatusOK, map[string]int{
		"projects":         projectCount,
		"services":         serviceCount,
		"collection_items": itemCount,
		"testimonials":     testimonialCount,
		"client_logos":     logoCount,
		"stats":            statCount,
		"media_assets":     mediaCount,
	})
}

// invalidate drops a collection's cached public payload after a mutation.
func (a *Admin) invalidate(ctx context.Context, key string) {
	if a.listCache == nil {
		return
	}
	a.listCache.Invalidate(ctx, key)
}

// invalidateAll drops every cached public payload. Used for section edits,
// which are cached per page.
func (a *Admin) invalidateAll(ctx context.Context) {
	if a.listCache == nil {
		return
	}
	a.listCache.InvalidateAll(ctx)
}

// deleteStoredFile best-effort removes an object referenced by URL from
// storage. Failures are logged and swallowed: the record delete proceeds,
// per the convention that orphaned objects beat broken deletes.
func (a *Admin) deleteStoredFile(ctx context.Context, rawURL string) {
	if a.storageClient == nil || rawURL == "" {
		return
	}
	bucket, key, ok := a.storageClient.ExtractKey(rawURL)
	if !ok {
		return // external URL, nothing to clean up
	}
	if err := a.storageClient.Delete(ctx, bucket, key); err != nil {
		slog.Warn("storage cleanup failed", "bucket", bucket, "key", key, "error", err)
	}
}

// --- JSON helpers shared by all handler files ---

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// writeError writes a JSON error body. Messages are surfaced verbatim to
// the panel, so they are written for admins, not end users.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes a request body into dst, rejecting unknown garbage
// with a 400. Returns false if the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// pathID parses the {id} URL parameter as a UUID. Returns uuid.Nil and
// false after writing a 400 if the parameter is malformed.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// emptyList converts a nil slice to an empty one so list endpoints always
// serialize as [] rather than null.
func emptyList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
