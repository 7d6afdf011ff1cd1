// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
)

// Field length caps. Generous — these exist to stop pathological payloads,
// not to model the domain.
const (
	maxShortField = 500
	maxLongField  = 50000
)

// requireField validates that a required text field is present and within
// the short cap. Returns a panel-facing message, or "" if valid.
func requireField(name, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", name)
	}
	if len(value) > maxShortField {
		return fmt.Sprintf("%s is too long (max %d characters)", name, maxShortField)
	}
	return ""
}

// checkOptional validates an optional short field's length.
func checkOptional(name string, value *string) string {
	if value != nil && len(*value) > maxShortField {
		return fmt.Sprintf("%s is too long (max %d characters)", name, maxShortField)
	}
	return ""
}

// checkLong validates an optional long-form field's length.
func checkLong(name string, value *string) string {
	if value != nil && len(*value) > maxLongField {
		return fmt.Sprintf("%s is too long (max %d characters)", name, maxLongField)
	}
	return ""
}

// firstError returns the first non-empty message, or "".
func firstError(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}
