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

// SectionStore handles the per-page editable section content.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `id, section_key, section_name, page, content,
	is_published, created_at, updated_at`

func scanSection(scanner interface{ Scan(...any) error }) (*models.SectionContent, error) {
	var sc models.SectionContent
	err := scanner.Scan(
		&sc.ID, &sc.SectionKey, &sc.SectionName, &sc.Page, &sc.Content,
		&sc.IsPublished, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// List returns every section ordered by page then key, for the admin editor.
func (s *SectionStore) List() ([]models.SectionContent, error) {
	return s.list(`SELECT ` + sectionColumns + ` FROM section_content ORDER BY page ASC, section_key ASC`)
}

// ListByPage returns a page's sections for admin editing.
func (s *SectionStore) ListByPage(page string) ([]models.SectionContent, error) {
	return s.list(`SELECT `+sectionColumns+` FROM section_content WHERE page = $1 ORDER BY section_key ASC`, page)
}

// ListPublishedByPage returns a page's published sections for the public API.
func (s *SectionStore) ListPublishedByPage(page string) ([]models.SectionContent, error) {
	return s.list(`SELECT `+sectionColumns+` FROM section_content WHERE page = $1 AND is_published ORDER BY section_key ASC`, page)
}

func (s *SectionStore) list(query string, args ...any) ([]models.SectionContent, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []models.SectionContent
	for rows.Next() {
		sc, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, *sc)
	}
	return items, rows.Err()
}

// FindByID retrieves a section by its UUID. Returns nil if not found.
func (s *SectionStore) FindByID(id uuid.UUID) (*models.SectionContent, error) {
	sc, err := scanSection(s.db.QueryRow(`SELECT `+sectionColumns+` FROM section_content WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by id: %w", err)
	}
	return sc, nil
}

// Upsert creates or updates a section keyed by (page, section_key). The
// editor saves whole sections, so content always replaces what was there.
func (s *SectionStore) Upsert(sc *models.SectionContent) (*models.SectionContent, error) {
	saved, err := scanSection(s.db.QueryRow(`
		INSERT INTO section_content (section_key, section_name, page, content, is_published)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (page, section_key) DO UPDATE SET
			section_name = EXCLUDED.section_name,
			content = EXCLUDED.content,
			is_published = EXCLUDED.is_published,
			updated_at = NOW()
		RETURNING `+sectionColumns,
		sc.SectionKey, sc.SectionName, sc.Page, sc.Content, sc.IsPublished,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert section: %w", err)
	}
	return saved, nil
}

// UpdateContent replaces only the content map of an existing section.
func (s *SectionStore) UpdateContent(id uuid.UUID, content models.SectionFields) error {
	_, err := s.db.Exec(`UPDATE section_content SET content = $1, updated_at = NOW() WHERE id = $2`, content, id)
	if err != nil {
		return fmt.Errorf("update section content: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag.
func (s *SectionStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE section_content SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set section published: %w", err)
	}
	return nil
}

// Delete removes a section by ID.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM section_content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}
