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

// ClientLogoStore handles client logo database operations.
type ClientLogoStore struct {
	db *sql.DB
}

// NewClientLogoStore creates a new ClientLogoStore.
func NewClientLogoStore(db *sql.DB) *ClientLogoStore {
	return &ClientLogoStore{db: db}
}

const clientLogoColumns = `id, client_name, logo_url, website_url,
	is_published, display_order, created_at, updated_at`

func scanClientLogo(scanner interface{ Scan(...any) error }) (*models.ClientLogo, error) {
	var l models.ClientLogo
	err := scanner.Scan(
		&l.ID, &l.ClientName, &l.LogoURL, &l.WebsiteURL,
		&l.IsPublished, &l.DisplayOrder, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns every client logo in display order.
func (s *ClientLogoStore) List() ([]models.ClientLogo, error) {
	return s.list(`SELECT ` + clientLogoColumns + ` FROM client_logos ORDER BY display_order ASC, created_at ASC`)
}

// ListPublished returns published logos for the marquee.
func (s *ClientLogoStore) ListPublished() ([]models.ClientLogo, error) {
	return s.list(`SELECT ` + clientLogoColumns + ` FROM client_logos WHERE is_published ORDER BY display_order ASC, created_at ASC`)
}

func (s *ClientLogoStore) list(query string) ([]models.ClientLogo, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list client logos: %w", err)
	}
	defer rows.Close()

	var items []models.ClientLogo
	for rows.Next() {
		l, err := scanClientLogo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client logo: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// FindByID retrieves a client logo by its UUID. Returns nil if not found.
func (s *ClientLogoStore) FindByID(id uuid.UUID) (*models.ClientLogo, error) {
	l, err := scanClientLogo(s.db.QueryRow(`SELECT `+clientLogoColumns+` FROM client_logos WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client logo by id: %w", err)
	}
	return l, nil
}

// Create inserts a new client logo and returns it with the generated ID.
// Logos default to published in the schema; the caller sets IsPublished
// explicitly so the admin form can still create hidden ones.
func (s *ClientLogoStore) Create(l *models.ClientLogo) (*models.ClientLogo, error) {
	created, err := scanClientLogo(s.db.QueryRow(`
		INSERT INTO client_logos (client_name, logo_url, website_url,
			is_published, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+clientLogoColumns,
		l.ClientName, l.LogoURL, l.WebsiteURL, l.IsPublished, l.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create client logo: %w", err)
	}
	return created, nil
}

// Update overwrites an existing client logo.
func (s *ClientLogoStore) Update(l *models.ClientLogo) error {
	_, err := s.db.Exec(`
		UPDATE client_logos SET
			client_name = $1, logo_url = $2, website_url = $3,
			is_published = $4, display_order = $5, updated_at = NOW()
		WHERE id = $6
	`, l.ClientName, l.LogoURL, l.WebsiteURL, l.IsPublished, l.DisplayOrder, l.ID)
	if err != nil {
		return fmt.Errorf("update client logo: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag.
func (s *ClientLogoStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE client_logos SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set client logo published: %w", err)
	}
	return nil
}

// Delete removes a client logo by ID.
func (s *ClientLogoStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM client_logos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client logo: %w", err)
	}
	return nil
}

// Count returns the number of client logos.
func (s *ClientLogoStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM client_logos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count client logos: %w", err)
	}
	return count, nil
}
