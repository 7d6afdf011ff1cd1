// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"districtcms/internal/cache"
	"districtcms/internal/markdown"
	"districtcms/internal/models"
	"districtcms/internal/store"
)

// Public groups the anonymous read-only API the marketing site consumes.
// Every endpoint returns published records in display order, cached in
// Valkey until the next admin mutation.
type Public struct {
	projects     *store.ProjectStore
	services     *store.ServiceStore
	collection   *store.CollectionItemStore
	testimonials *store.TestimonialStore
	clientLogos  *store.ClientLogoStore
	stats        *store.StatStore
	sections     *store.SectionStore
	listCache    *cache.ListCache
}

// NewPublic creates the public handler group. listCache may be nil.
func NewPublic(
	projects *store.ProjectStore,
	services *store.ServiceStore,
	collection *store.CollectionItemStore,
	testimonials *store.TestimonialStore,
	clientLogos *store.ClientLogoStore,
	stats *store.StatStore,
	sections *store.SectionStore,
	listCache *cache.ListCache,
) *Public {
	return &Public{
		projects:     projects,
		services:     services,
		collection:   collection,
		testimonials: testimonials,
		clientLogos:  clientLogos,
		stats:        stats,
		sections:     sections,
		listCache:    listCache,
	}
}

// serveCached writes a cached payload if one exists; otherwise it calls
// build, caches the result, and writes it.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string, build func() (any, error)) {
	ctx := r.Context()
	if p.listCache != nil {
		if payload, ok := p.listCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	data, err := build()
	if err != nil {
		slog.Error("public list failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load content.")
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("public list encode failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load content.")
		return
	}

	if p.listCache != nil {
		p.listCache.Set(ctx, key, payload)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// Projects returns published projects in display order.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "projects", func() (any, error) {
		items, err := p.projects.ListPublished()
		if err != nil {
			return nil, err
		}
		return emptyList(items), nil
	})
}

// publicService is a published service with its Markdown rendered.
type publicService struct {
	models.Service
	LongDescriptionHTML string `json:"long_description_html,omitempty"`
}

// Services returns published services with long descriptions rendered to
// HTML alongside the raw Markdown.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "services", func() (any, error) {
		items, err := p.services.ListPublished()
		if err != nil {
			return nil, err
		}
		out := make([]publicService, 0, len(items))
		for _, svc := range items {
			ps := publicService{Service: svc}
			if svc.LongDescription != nil {
				html, err := markdown.ToHTML(*svc.LongDescription)
				if err != nil {
					slog.Warn("service markdown render failed", "id", svc.ID, "error", err)
				} else {
					ps.LongDescriptionHTML = html
				}
			}
			out = append(out, ps)
		}
		return out, nil
	})
}

// Collection returns published collection items. Category filtering is the
// client's job against the fixed category list.
func (p *Public) Collection(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "collection", func() (any, error) {
		items, err := p.collection.ListPublished()
		if err != nil {
			return nil, err
		}
		return emptyList(items), nil
	})
}

// CollectionCategories returns the fixed category list for the filter bar.
func (p *Public) CollectionCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.CollectionCategories)
}

// Testimonials returns published testimonials, falling back to a built-in
// set when none are published so the carousel never renders empty.
func (p *Public) Testimonials(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "testimonials", func() (any, error) {
		items, err := p.testimonials.ListPublished()
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return fallbackTestimonials(), nil
		}
		return items, nil
	})
}

// ClientLogos returns published logos for the client marquee.
func (p *Public) ClientLogos(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "clients", func() (any, error) {
		items, err := p.clientLogos.ListPublished()
		if err != nil {
			return nil, err
		}
		return emptyList(items), nil
	})
}

// Stats returns the homepage counters, falling back to a built-in set when
// the table is empty.
func (p *Public) Stats(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "stats", func() (any, error) {
		items, err := p.stats.List()
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return fallbackStats(), nil
		}
		return items, nil
	})
}

// Sections returns a page's published sections keyed by section_key, the
// shape page components consume directly.
func (p *Public) Sections(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !models.ValidPage(page) {
		writeError(w, http.StatusNotFound, "Unknown page.")
		return
	}

	p.serveCached(w, r, cache.SectionsKey(page), func() (any, error) {
		items, err := p.sections.ListPublishedByPage(page)
		if err != nil {
			return nil, err
		}
		out := make(map[string]models.SectionFields, len(items))
		for _, sc := range items {
			out[sc.SectionKey] = sc.Content
		}
		return out, nil
	})
}

// Health reports liveness. Also used by the container healthcheck.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fallbackTestimonials is the copy shown before any real testimonial is
// published.
func fallbackTestimonials() []models.Testimonial {
	str := func(s string) *string { return &s }
	return []models.Testimonial{
		{
			ClientName:   "Sarah Al-Rashid",
			Role:         str("Facilities Director"),
			Company:      str("Aramco"),
			Quote:        "The team transformed our headquarters lobby into a stunning green space. The quality of the artificial plants is remarkable — visitors regularly ask if they are real.",
			IsPublished:  true,
			DisplayOrder: 0,
		},
		{
			ClientName:   "Mohammed Al-Faisal",
			Role:         str("General Manager"),
			Company:      str("Four Seasons Riyadh"),
			Quote:        "Impeccable service and maintenance. Our atrium installation still looks flawless two years on, with zero watering and zero mess.",
			IsPublished:  true,
			DisplayOrder: 1,
		},
		{
			ClientName:   "Layla Hassan",
			Role:         str("Owner"),
			Company:      str("Naya Restaurant"),
			Quote:        "The green wall became the centerpiece of our dining room. Guests photograph it every night.",
			IsPublished:  true,
			DisplayOrder: 2,
		},
	}
}

// fallbackStats is the counter set shown before any real stat exists.
func fallbackStats() []models.Stat {
	return []models.Stat{
		{Label: "Projects Completed", Value: "500+", DisplayOrder: 0},
		{Label: "Years Experience", Value: "12+", DisplayOrder: 1},
		{Label: "Client Satisfaction", Value: "98%", DisplayOrder: 2},
		{Label: "Corporate Clients", Value: "150+", DisplayOrder: 3},
	}
}
