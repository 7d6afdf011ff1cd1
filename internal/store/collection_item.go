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

// CollectionItemStore handles collection-item database operations.
type CollectionItemStore struct {
	db *sql.DB
}

// NewCollectionItemStore creates a new CollectionItemStore.
func NewCollectionItemStore(db *sql.DB) *CollectionItemStore {
	return &CollectionItemStore{db: db}
}

const collectionItemColumns = `id, name, slug, category, short_description,
	dimensions, materials, price, application, is_published, display_order,
	created_at, updated_at`

func scanCollectionItem(scanner interface{ Scan(...any) error }) (*models.CollectionItem, error) {
	var c models.CollectionItem
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Category, &c.ShortDescription,
		&c.Dimensions, &c.Materials, &c.Price, &c.Application,
		&c.IsPublished, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every collection item in display order.
func (s *CollectionItemStore) List() ([]models.CollectionItem, error) {
	return s.list(`SELECT `+collectionItemColumns+` FROM collection_items ORDER BY display_order ASC, created_at ASC`)
}

// ListPublished returns published items in public display order. Category
// filtering happens client-side against the fixed category list.
func (s *CollectionItemStore) ListPublished() ([]models.CollectionItem, error) {
	return s.list(`SELECT `+collectionItemColumns+` FROM collection_items WHERE is_published ORDER BY display_order ASC, created_at ASC`)
}

func (s *CollectionItemStore) list(query string, args ...any) ([]models.CollectionItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	defer rows.Close()

	var items []models.CollectionItem
	for rows.Next() {
		c, err := scanCollectionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection item: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a collection item by its UUID. Returns nil if not found.
func (s *CollectionItemStore) FindByID(id uuid.UUID) (*models.CollectionItem, error) {
	c, err := scanCollectionItem(s.db.QueryRow(`SELECT `+collectionItemColumns+` FROM collection_items WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find collection item by id: %w", err)
	}
	return c, nil
}

// Create inserts a new collection item and returns it with the generated ID.
func (s *CollectionItemStore) Create(c *models.CollectionItem) (*models.CollectionItem, error) {
	created, err := scanCollectionItem(s.db.QueryRow(`
		INSERT INTO collection_items (name, slug, category, short_description,
			dimensions, materials, price, application, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+collectionItemColumns,
		c.Name, c.Slug, c.Category, c.ShortDescription,
		c.Dimensions, c.Materials, c.Price, c.Application,
		c.IsPublished, c.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create collection item: %w", err)
	}
	return created, nil
}

// Update overwrites an existing collection item.
func (s *CollectionItemStore) Update(c *models.CollectionItem) error {
	_, err := s.db.Exec(`
		UPDATE collection_items SET
			name = $1, slug = $2, category = $3, short_description = $4,
			dimensions = $5, materials = $6, price = $7, application = $8,
			is_published = $9, display_order = $10, updated_at = NOW()
		WHERE id = $11
	`, c.Name, c.Slug, c.Category, c.ShortDescription,
		c.Dimensions, c.Materials, c.Price, c.Application,
		c.IsPublished, c.DisplayOrder, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update collection item: %w", err)
	}
	return nil
}

// SetPublished flips only the publish flag.
func (s *CollectionItemStore) SetPublished(id uuid.UUID, published bool) error {
	_, err := s.db.Exec(`UPDATE collection_items SET is_published = $1, updated_at = NOW() WHERE id = $2`, published, id)
	if err != nil {
		return fmt.Errorf("set collection item published: %w", err)
	}
	return nil
}

// Delete removes a collection item by ID.
func (s *CollectionItemStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM collection_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete collection item: %w", err)
	}
	return nil
}

// Count returns the number of collection items.
func (s *CollectionItemStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM collection_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count collection items: %w", err)
	}
	return count, nil
}
