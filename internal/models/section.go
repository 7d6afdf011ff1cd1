// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Page identifiers for section content. Each marketing page owns a set of
// editable sections keyed by section_key.
const (
	PageHome          = "home"
	PageAbout         = "about"
	PageServices      = "services"
	PageCollection    = "collection"
	PageProjects      = "projects"
	PageContact       = "contact"
	PageHospitality   = "hospitality"
	PageFlowers       = "flowers"
	PageStyling       = "styling"
	PageTreeSolutions = "tree-solutions"
)

// SectionPages lists every page that can carry editable sections.
var SectionPages = []string{
	PageHome, PageAbout, PageServices, PageCollection, PageProjects,
	PageContact, PageHospitality, PageFlowers, PageStyling, PageTreeSolutions,
}

// ValidPage reports whether p is a known section page identifier.
func ValidPage(p string) bool {
	for _, page := range SectionPages {
		if page == p {
			return true
		}
	}
	return false
}

// FieldKind tags the value kinds a section content field can hold.
// Editing and rendering code dispatch on the kind instead of doing runtime
// type inspection on raw JSON.
type FieldKind string

const (
	FieldText     FieldKind = "text"     // short copy: headings, labels, CTAs
	FieldLongText FieldKind = "longtext" // paragraphs
	FieldURL      FieldKind = "url"      // image/video/link URLs
	FieldList     FieldKind = "list"     // repeated sub-records (cards, bullets)
)

// longTextThreshold is the rune count above which a plain string field is
// classified as long text rather than a short label.
const longTextThreshold = 160

// FieldValue is one value in a section's content map. Exactly one of Text
// or Items is meaningful, selected by Kind.
type FieldValue struct {
	Kind  FieldKind
	Text  string
	Items []map[string]string
}

// TextValue builds a FieldValue from a plain string, classifying its kind.
func TextValue(s string) FieldValue {
	return FieldValue{Kind: classifyText(s), Text: s}
}

// ListValue builds a list-kind FieldValue from sub-records.
func ListValue(items []map[string]string) FieldValue {
	return FieldValue{Kind: FieldList, Items: items}
}

// UnmarshalJSON dispatches on the wire shape: JSON strings (and numbers,
// which some early rows stored for stat-like fields) become text values,
// arrays of flat objects become list values.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = TextValue(val)
		return nil
	case float64, bool, nil:
		s, _ := stringify(val)
		*v = TextValue(s)
		return nil
	case []any:
		items := make([]map[string]string, 0, len(val))
		for _, entry := range val {
			obj, ok := entry.(map[string]any)
			if !ok {
				return fmt.Errorf("section content: list entries must be objects, got %T", entry)
			}
			item := make(map[string]string, len(obj))
			for k, fieldVal := range obj {
				s, ok := stringify(fieldVal)
				if !ok {
					return fmt.Errorf("section content: unsupported item value for %q", k)
				}
				item[k] = s
			}
			items = append(items, item)
		}
		*v = ListValue(items)
		return nil
	default:
		return fmt.Errorf("section content: unsupported value shape %T", raw)
	}
}

// MarshalJSON reproduces the flat wire shape: text kinds serialize as plain
// strings, list kinds as arrays of objects.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.Kind == FieldList {
		if v.Items == nil {
			return json.Marshal([]map[string]string{})
		}
		return json.Marshal(v.Items)
	}
	return json.Marshal(v.Text)
}

// classifyText picks a kind for a plain string value.
func classifyText(s string) FieldKind {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "/") {
		return FieldURL
	}
	if len([]rune(s)) > longTextThreshold {
		return FieldLongText
	}
	return FieldText
}

// stringify coerces JSON scalar values to strings.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// SectionFields is the open-ended content map of a section, stored as JSONB.
type SectionFields map[string]FieldValue

// Text returns the text of a field, or "" if absent or not a text kind.
func (f SectionFields) Text(key string) string {
	v, ok := f[key]
	if !ok || v.Kind == FieldList {
		return ""
	}
	return v.Text
}

// Items returns the sub-records of a list field, or nil.
func (f SectionFields) Items(key string) []map[string]string {
	v, ok := f[key]
	if !ok || v.Kind != FieldList {
		return nil
	}
	return v.Items
}

// Value implements driver.Valuer so SectionFields can be written to JSONB.
func (f SectionFields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for reading JSONB columns.
func (f *SectionFields) Scan(src any) error {
	var data []byte
	switch val := src.(type) {
	case []byte:
		data = val
	case string:
		data = []byte(val)
	case nil:
		*f = SectionFields{}
		return nil
	default:
		return fmt.Errorf("section content: cannot scan %T", src)
	}
	return json.Unmarshal(data, f)
}

// SectionContent is the generic escape hatch letting admins edit arbitrary
// marketing copy and images per page without a dedicated entity. Content is
// an open-ended field map; SectionKey is unique per page.
type SectionContent struct {
	ID          uuid.UUID     `json:"id"`
	SectionKey  string        `json:"section_key"`
	SectionName string        `json:"section_name"`
	Page        string        `json:"page"`
	Content     SectionFields `json:"content"`
	IsPublished bool          `json:"is_published"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
