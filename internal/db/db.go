// Package db persists license catalog snapshots in SQLite.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database with WAL mode and foreign keys enabled
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and serializes writers
	conn.SetMaxOpenConns(1)

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS licenses (
	id TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	category TEXT NOT NULL,
	copyleft_strength TEXT NOT NULL,
	family TEXT,
	deprecated INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS obligations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	effort TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS rights (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS compatibility_edges (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	source_id TEXT NOT NULL REFERENCES licenses(id),
	target_id TEXT NOT NULL REFERENCES licenses(id),
	level TEXT NOT NULL,
	direction TEXT NOT NULL,
	dominant_license_id TEXT REFERENCES licenses(id),
	notes TEXT
);
CREATE TABLE IF NOT EXISTS license_obligations (
	license_id TEXT NOT NULL REFERENCES licenses(id),
	obligation_id TEXT NOT NULL REFERENCES obligations(id),
	scope TEXT NOT NULL,
	PRIMARY KEY (license_id, obligation_id)
);
CREATE TABLE IF NOT EXISTS license_rights (
	license_id TEXT NOT NULL REFERENCES licenses(id),
	right_id TEXT NOT NULL REFERENCES rights(id),
	PRIMARY KEY (license_id, right_id)
);
CREATE TABLE IF NOT EXISTS snapshot_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// InitSchema creates the snapshot tables if they do not exist
func (d *DB) InitSchema() error {
	if _, err := d.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
