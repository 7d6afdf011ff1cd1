// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial represents a client quote shown in the public carousel.
type Testimonial struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"client_name"`
	Role         *string   `json:"role,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Quote        string    `json:"quote"`
	ClientLogo   *string   `json:"client_logo,omitempty"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
