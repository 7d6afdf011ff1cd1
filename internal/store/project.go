// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all District CMS
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods; every call is single-record and non-transactional.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"districtcms/internal/models"
)

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// projectColumns lists the columns selected in project queries.
const projectColumns = `id, title, slug, location, client_name, project_type,
	description, hero_image, video_url, is_published, display_order,
	created_at, updated_at`

// scanProject scans a project row from the result set.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Location, &p.ClientName, &p.ProjectType,
		&p.Description, &p.HeroImage, &p.VideoURL, &p.IsPublished, &p.DisplayOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every project ordered by display_order ascending. Order
// collisions are broken by creation time for stable output, not uniqueness.
func (s *ProjectStore) List() ([]models.Project, error) {
	return s.list(`SELECT ` + projectColumns + ` FROM projects ORDER BY display_order ASC, created_at ASC`)
}

// ListPublished returns published projects in public display order.
func (s *ProjectStore) ListPublished() ([]models.Project, error) {
	return s.list(`SELECT ` + projectColumns + ` FROM projects WHERE is_published ORDER BY display_order ASC, created_at ASC`)
}

func (s *ProjectStore) list(query string) ([]models.Project, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (title, slug, location, client_name, project_type,
			description, hero_image, video_url, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+projectColumns,
		p.Title, p.Slug, p.Location, p.ClientName, p.ProjectType,
		p.Description, p.HeroImage, p.VideoURL, p.IsPublished, p.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update overwrites an existing project with the full editable shape.
// The admin form always submits every field, so this is not a patch merge.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, slug = $2, location = $3, client_name = $4,
			project_type = $5, description = $6, hero_image = $7, video_url = $8,
			is_published = $9, display_order = $10, updated_at = NOW()
		WHERE id = $11
	`, p.Title, p.Slug, p.Location, p.ClientName, p.ProjectType, p.Description,
		p.HeroImage, p.VideoURL, p.IsPublished, p.DisplayOrder, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag, leaving all other fields alone.
func (s *ProjectStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE projects SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set project published: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Count returns the number of projects. New projects default their
// display_order to this value.
func (s *ProjectStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
