// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"districtcms/internal/models"
)

// MediaStore handles media library metadata. The files themselves live in
// object storage; rows here only describe them.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, file_name, file_path, file_type, file_size, alt_text, thumb_path, created_at`

func scanMedia(scanner interface{ Scan(...any) error }) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := scanner.Scan(
		&m.ID, &m.FileName, &m.FilePath, &m.FileType, &m.FileSize,
		&m.AltText, &m.ThumbPath, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all media assets, newest first.
func (s *MediaStore) List() ([]models.MediaAsset, error) {
	rows, err := s.db.Query(`SELECT ` + mediaColumns + ` FROM media_assets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.MediaAsset
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media asset by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.MediaAsset, error) {
	m, err := scanMedia(s.db.QueryRow(`SELECT `+mediaColumns+` FROM media_assets WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a media asset record and returns it with the generated ID.
func (s *MediaStore) Create(m *models.MediaAsset) (*models.MediaAsset, error) {
	created, err := scanMedia(s.db.QueryRow(`
		INSERT INTO media_assets (file_name, file_path, file_type, file_size, alt_text, thumb_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+mediaColumns,
		m.FileName, m.FilePath, m.FileType, m.FileSize, m.AltText, m.ThumbPath,
	))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// UpdateAltText changes the alt text of an asset.
func (s *MediaStore) UpdateAltText(id uuid.UUID, altText *string) error {
	_, err := s.db.Exec(`UPDATE media_assets SET alt_text = $1 WHERE id = $2`, altText, id)
	if err != nil {
		return fmt.Errorf("update media alt text: %w", err)
	}
	return nil
}

// Delete removes a media asset record by ID.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// Count returns the number of media assets.
func (s *MediaStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM media_assets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return count, nil
}
