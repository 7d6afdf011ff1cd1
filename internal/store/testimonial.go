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

// TestimonialStore handles testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, client_name, role, company, quote, client_logo,
	is_published, display_order, created_at, updated_at`

func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := scanner.Scan(
		&t.ID, &t.ClientName, &t.Role, &t.Company, &t.Quote, &t.ClientLogo,
		&t.IsPublished, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns every testimonial in display order.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	return s.list(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY display_order ASC, created_at ASC`)
}

// ListPublished returns published testimonials in public display order.
func (s *TestimonialStore) ListPublished() ([]models.Testimonial, error) {
	return s.list(`SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_published ORDER BY display_order ASC, created_at ASC`)
}

func (s *TestimonialStore) list(query string) ([]models.Testimonial, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with the generated ID.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	created, err := scanTestimonial(s.db.QueryRow(`
		INSERT INTO testimonials (client_name, role, company, quote, client_logo,
			is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+testimonialColumns,
		t.ClientName, t.Role, t.Company, t.Quote, t.ClientLogo,
		t.IsPublished, t.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

// Update overwrites an existing testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			client_name = $1, role = $2, company = $3, quote = $4,
			client_logo = $5, is_published = $6, display_order = $7,
			updated_at = NOW()
		WHERE id = $8
	`, t.ClientName, t.Role, t.Company, t.Quote, t.ClientLogo,
		t.IsPublished, t.DisplayOrder, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag.
func (s *TestimonialStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE testimonials SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set testimonial published: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

// Count returns the number of testimonials.
func (s *TestimonialStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM testimonials`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return count, nil
}
