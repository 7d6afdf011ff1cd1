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

// ServiceStore handles all service-related database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, title, slug, short_description, long_description,
	hero_image, icon, is_published, display_order, created_at, updated_at`

func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var s models.Service
	err := scanner.Scan(
		&s.ID, &s.Title, &s.Slug, &s.ShortDescription, &s.LongDescription,
		&s.HeroImage, &s.Icon, &s.IsPublished, &s.DisplayOrder,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns every service in display order.
func (s *ServiceStore) List() ([]models.Service, error) {
	return s.list(`SELECT ` + serviceColumns + ` FROM services ORDER BY display_order ASC, created_at ASC`)
}

// ListPublished returns published services in public display order.
func (s *ServiceStore) ListPublished() ([]models.Service, error) {
	return s.list(`SELECT ` + serviceColumns + ` FROM services WHERE is_published ORDER BY display_order ASC, created_at ASC`)
}

func (s *ServiceStore) list(query string) ([]models.Service, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *svc)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	svc, err := scanService(s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return svc, nil
}

// Create inserts a new service and returns it with the generated ID.
func (s *ServiceStore) Create(svc *models.Service) (*models.Service, error) {
	created, err := scanService(s.db.QueryRow(`
		INSERT INTO services (title, slug, short_description, long_description,
			hero_image, icon, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+serviceColumns,
		svc.Title, svc.Slug, svc.ShortDescription, svc.LongDescription,
		svc.HeroImage, svc.Icon, svc.IsPublished, svc.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return created, nil
}

// Update overwrites an existing service.
func (s *ServiceStore) Update(svc *models.Service) error {
	_, err := s.db.Exec(`
		UPDATE services SET
			title = $1, slug = $2, short_description = $3, long_description = $4,
			hero_image = $5, icon = $6, is_published = $7, display_order = $8,
			updated_at = NOW()
		WHERE id = $9
	`, svc.Title, svc.Slug, svc.ShortDescription, svc.LongDescription,
		svc.HeroImage, svc.Icon, svc.IsPublished, svc.DisplayOrder, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag.
func (s *ServiceStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE services SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set service published: %w", err)
	}
	return nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// Count returns the number of services.
func (s *ServiceStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}
