// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaAsset represents a file in the shared media library. Metadata lives
// in PostgreSQL; the file itself lives in object storage and FilePath holds
// its public URL. ThumbPath, when set, points at a generated JPEG preview.
type MediaAsset struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	FileType  string    `json:"file_type"`
	FileSize  *int64    `json:"file_size,omitempty"`
	AltText   *string   `json:"alt_text,omitempty"`
	ThumbPath *string   `json:"thumb_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsImage returns true if the asset is an image type.
func (m *MediaAsset) IsImage() bool {
	return strings.HasPrefix(m.FileType, "image/")
}

// IsVideo returns true if the asset is a video type.
func (m *MediaAsset) IsVideo() bool {
	return strings.HasPrefix(m.FileType, "video/")
}

// HumanSize returns a human-readable file size string.
func (m *MediaAsset) HumanSize() string {
	if m.FileSize == nil {
		return "unknown"
	}
	const (
		kb = 1024
		mb = 1024 * kb
	)
	size := *m.FileSize
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.0f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
