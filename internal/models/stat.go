// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Stat represents an animated counter on the homepage ("500+", "98%").
// Value is free text so suffixes like "+" survive round-trips; stats carry
// no publish flag — every row is shown.
type Stat struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	Unit         *string   `json:"unit,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
