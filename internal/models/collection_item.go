// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CollectionCategories is the fixed set of categories a collection item
// may belong to. The category filter on the public collection page and the
// admin form dropdown both draw from this list.
var CollectionCategories = []string{
	"Trees",
	"Flowers",
	"Leaves/Foliage",
	"Green Walls",
	"Trunks & Branches",
	"Planters",
}

// ValidCategory reports whether c is one of the fixed collection categories.
func ValidCategory(c string) bool {
	for _, cat := range CollectionCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// CollectionItem represents a product in the artificial-plant collection.
// Price is free text ("POA", "from 1,200 SAR"), not a numeric amount.
type CollectionItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category"`
	ShortDescription *string   `json:"short_description,omitempty"`
	Dimensions       *string   `json:"dimensions,omitempty"`
	Materials        *string   `json:"materials,omitempty"`
	Price            *string   `json:"price,omitempty"`
	Application      *string   `json:"application,omitempty"`
	IsPublished      bool      `json:"is_published"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
