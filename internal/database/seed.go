package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user and the editable section rows for each marketing page.
// It is a no-op when users already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, full_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@district.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := seedSections(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@district.local",
		"password", "admin",
	)

	return nil
}

// seedSections inserts the editable section rows the page builder expects.
// Content starts as empty maps — the public site falls back to built-in
// placeholder copy until an admin fills them in.
func seedSections(db *sql.DB) error {
	sections := []struct {
		page, key, name string
	}{
		{"home", "hero", "Hero"},
		{"home", "stats", "Stats Band"},
		{"home", "services_preview", "Services Preview"},
		{"home", "testimonials", "Testimonials"},
		{"home", "client_logos", "Client Logos"},
		{"home", "dual_cta", "Dual CTA"},
		{"about", "snapshot", "About Snapshot"},
		{"about", "approach", "Our Approach"},
		{"services", "intro", "Services Intro"},
		{"services", "maintenance", "Maintenance"},
		{"collection", "intro", "Collection Intro"},
		{"projects", "gallery", "Project Gallery"},
		{"contact", "details", "Contact Details"},
		{"hospitality", "hero", "Hospitality Hero"},
		{"flowers", "hero", "Flowers Hero"},
		{"styling", "hero", "Styling Hero"},
		{"tree-solutions", "consultation", "Tree Consultation"},
	}

	for _, s := range sections {
		_, err := db.Exec(`
			INSERT INTO section_content (page, section_key, section_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (page, section_key) DO NOTHING
		`, s.page, s.key, s.name)
		if err != nil {
			return fmt.Errorf("seed section %s/%s: %w", s.page, s.key, err)
		}
	}

	return nil
}
