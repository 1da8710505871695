package database

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in order; each version runs at most once
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_hospitals",
		SQL: `
			CREATE TABLE IF NOT EXISTS hospitals (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				address TEXT,
				city TEXT,
				state TEXT,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				phone TEXT,
				email TEXT,
				website TEXT,
				quality_score REAL NOT NULL DEFAULT 0.5,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_hospitals_city ON hospitals(city);
		`,
	},
	{
		Version: 2,
		Name:    "create_organs",
		SQL: `
			CREATE TABLE IF NOT EXISTS organs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				description TEXT,
				urgency_level INTEGER NOT NULL DEFAULT 1,
				preservation_time_hours INTEGER NOT NULL DEFAULT 24
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_organ_availability",
		SQL: `
			CREATE TABLE IF NOT EXISTS organ_availability (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				hospital_id INTEGER NOT NULL REFERENCES hospitals(id),
				organ_id INTEGER NOT NULL REFERENCES organs(id),
				is_available INTEGER NOT NULL DEFAULT 1,
				quantity INTEGER NOT NULL DEFAULT 1,
				blood_type TEXT NOT NULL,
				age_range TEXT,
				condition TEXT NOT NULL DEFAULT 'good',
				notes TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_availability_hospital ON organ_availability(hospital_id);
			CREATE INDEX IF NOT EXISTS idx_availability_organ ON organ_availability(organ_id);
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
