// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio installation shown on the projects page.
// HeroImage and VideoURL hold public URLs — uploaded files and pasted links
// are indistinguishable at read time.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Location     *string   `json:"location,omitempty"`
	ClientName   *string   `json:"client_name,omitempty"`
	ProjectType  *string   `json:"project_type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	HeroImage    *string   `json:"hero_image,omitempty"`
	VideoURL     *string   `json:"video_url,omitempty"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
