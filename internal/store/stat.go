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

// StatStore handles homepage stat database operations. Stats have no
// publish flag, so there is a single List used by both admin and public.
type StatStore struct {
	db *sql.DB
}

// NewStatStore creates a new StatStore.
func NewStatStore(db *sql.DB) *StatStore {
	return &StatStore{db: db}
}

const statColumns = `id, label, value, unit, display_order, created_at, updated_at`

func scanStat(scanner interface{ Scan(...any) error }) (*models.Stat, error) {
	var st models.Stat
	err := scanner.Scan(
		&st.ID, &st.Label, &st.Value, &st.Unit, &st.DisplayOrder,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// List returns every stat in display order.
func (s *StatStore) List() ([]models.Stat, error) {
	rows, err := s.db.Query(`SELECT ` + statColumns + ` FROM stats ORDER BY display_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	defer rows.Close()

	var items []models.Stat
	for rows.Next() {
		st, err := scanStat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		items = append(items, *st)
	}
	return items, rows.Err()
}

// FindByID retrieves a stat by its UUID. Returns nil if not found.
func (s *StatStore) FindByID(id uuid.UUID) (*models.Stat, error) {
	st, err := scanStat(s.db.QueryRow(`SELECT `+statColumns+` FROM stats WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stat by id: %w", err)
	}
	return st, nil
}

// Create inserts a new stat and returns it with the generated ID.
func (s *StatStore) Create(st *models.Stat) (*models.Stat, error) {
	created, err := scanStat(s.db.QueryRow(`
		INSERT INTO stats (label, value, unit, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+statColumns,
		st.Label, st.Value, st.Unit, st.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create stat: %w", err)
	}
	return created, nil
}

// Update overwrites an existing stat.
func (s *StatStore) Update(st *models.Stat) error {
	_, err := s.db.Exec(`
		UPDATE stats SET label = $1, value = $2, unit = $3, display_order = $4,
			updated_at = NOW()
		WHERE id = $5
	`, st.Label, st.Value, st.Unit, st.DisplayOrder, st.ID)
	if err != nil {
		return fmt.Errorf("update stat: %w", err)
	}
	return nil
}

// Delete removes a stat by ID.
func (s *StatStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM stats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stat: %w", err)
	}
	return nil
}

// Count returns the number of stats.
func (s *StatStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM stats`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stats: %w", err)
	}
	return count, nil
}
