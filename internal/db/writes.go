package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// WriteSnapshot replaces the database content with s in one transaction.
// On success s.WrittenAt holds the write time.
func (d *DB) WriteSnapshot(s *Snapshot) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot write: %w", err)
	}
	defer tx.Rollback()

	// children first so foreign keys hold while clearing
	for _, table := range []string{
		"license_rights", "license_obligations", "compatibility_edges",
		"rights", "obligations", "licenses", "snapshot_meta",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, l := range s.Licenses {
		if _, err := tx.Exec(
			`INSERT INTO licenses (id, display_name, category, copyleft_strength, family, deprecated) VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, l.DisplayName, l.Category, l.CopyleftStrength, l.Family, l.Deprecated,
		); err != nil {
			return fmt.Errorf("inserting license %s: %w", l.ID, err)
		}
	}
	for _, o := range s.Obligations {
		if _, err := tx.Exec(
			`INSERT INTO obligations (id, name, description, effort) VALUES (?, ?, ?, ?)`,
			o.ID, o.Name, o.Description, o.Effort,
		); err != nil {
			return fmt.Errorf("inserting obligation %s: %w", o.ID, err)
		}
	}
	for _, r := range s.Rights {
		if _, err := tx.Exec(
			`INSERT INTO rights (id, name, description) VALUES (?, ?, ?)`,
			r.ID, r.Name, r.Description,
		); err != nil {
			return fmt.Errorf("inserting right %s: %w", r.ID, err)
		}
	}
	for _, e := range s.Edges {
		if _, err := tx.Exec(
			`INSERT INTO compatibility_edges (id, position, source_id, target_id, level, direction, dominant_license_id, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Position, e.SourceID, e.TargetID, e.Level, e.Direction, e.DominantLicenseID, e.Notes,
		); err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.SourceID, e.TargetID, err)
		}
	}
	for _, lo := range s.LicenseObligations {
		if _, err := tx.Exec(
			`INSERT INTO license_obligations (license_id, obligation_id, scope) VALUES (?, ?, ?)`,
			lo.LicenseID, lo.ObligationID, lo.Scope,
		); err != nil {
			return fmt.Errorf("assigning obligation %s to %s: %w", lo.ObligationID, lo.LicenseID, err)
		}
	}
	for _, lr := range s.LicenseRights {
		if _, err := tx.Exec(
			`INSERT INTO license_rights (license_id, right_id) VALUES (?, ?)`,
			lr.LicenseID, lr.RightID,
		); err != nil {
			return fmt.Errorf("assigning right %s to %s: %w", lr.RightID, lr.LicenseID, err)
		}
	}

	now := time.Now().UnixMilli()
	if _, err := tx.Exec(
		`INSERT INTO snapshot_meta (key, value) VALUES ('written_at', ?)`,
		strconv.FormatInt(now, 10),
	); err != nil {
		return fmt.Errorf("recording snapshot time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	s.WrittenAt = now
	return nil
}

// ReadSnapshot loads every table. WrittenAt is 0 when the database was never
// written by WriteSnapshot.
func (d *DB) ReadSnapshot() (*Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	if s.Licenses, err = d.AllLicenses(); err != nil {
		return nil, fmt.Errorf("reading licenses: %w", err)
	}
	if s.Obligations, err = d.AllObligations(); err != nil {
		return nil, fmt.Errorf("reading obligations: %w", err)
	}
	if s.Rights, err = d.AllRights(); err != nil {
		return nil, fmt.Errorf("reading rights: %w", err)
	}
	if s.Edges, err = d.AllEdges(); err != nil {
		return nil, fmt.Errorf("reading edges: %w", err)
	}
	if s.LicenseObligations, err = d.AllLicenseObligations(); err != nil {
		return nil, fmt.Errorf("reading obligation assignments: %w", err)
	}
	if s.LicenseRights, err = d.AllLicenseRights(); err != nil {
		return nil, fmt.Errorf("reading right assignments: %w", err)
	}
	if s.WrittenAt, err = d.writtenAt(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (d *DB) writtenAt() (int64, error) {
	var raw string
	err := d.conn.QueryRow(`SELECT value FROM snapshot_meta WHERE key = 'written_at'`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading snapshot time: %w", err)
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing snapshot time %q: %w", raw, err)
	}
	return ms, nil
}
