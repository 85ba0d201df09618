package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS coordinates (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		east  REAL NOT NULL,
		north REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS volumes (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		width  REAL NOT NULL CHECK(width > 0),
		length REAL NOT NULL CHECK(length > 0),
		height REAL NOT NULL CHECK(height > 0),
		total  REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS terrain_types (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		code         INTEGER NOT NULL CHECK(code BETWEEN 1 AND 8),
		swell_factor REAL NOT NULL CHECK(swell_factor > 0 AND swell_factor <= 1)
	)`,

	`CREATE TABLE IF NOT EXISTS audit_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_on TEXT NOT NULL,
		action      TEXT NOT NULL,
		descriptor  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS movements (
		seq            INTEGER PRIMARY KEY AUTOINCREMENT,
		id             TEXT NOT NULL UNIQUE,
		descriptor     TEXT NOT NULL UNIQUE,
		volume_id      INTEGER NOT NULL REFERENCES volumes(id),
		terrain_id     INTEGER NOT NULL REFERENCES terrain_types(id),
		coordinates_id INTEGER NOT NULL REFERENCES coordinates(id),
		audit_id       INTEGER REFERENCES audit_log(id),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_log_descriptor ON audit_log(descriptor)`,
}
