// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service represents an offering (maintenance, styling, tree solutions...)
// listed on the services pages. LongDescription is authored in Markdown and
// rendered to HTML on the public API.
type Service struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription *string   `json:"short_description,omitempty"`
	LongDescription  *string   `json:"long_description,omitempty"`
	HeroImage        *string   `json:"hero_image,omitempty"`
	Icon             *string   `json:"icon,omitempty"`
	IsPublished      bool      `json:"is_published"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
