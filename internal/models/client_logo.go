// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientLogo represents a logo in the client marquee. Unlike most content
// entities it defaults to published — logos are added to be shown.
type ClientLogo struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"client_name"`
	LogoURL      string    `json:"logo_url"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
