package db

type rowScanner interface{ Scan(dest ...any) error }

// scanLicense scans a row into a License. The row must have all 6 columns in standard order.
func scanLicense(scanner rowScanner) (License, error) {
	var l License
	err := scanner.Scan(&l.ID, &l.DisplayName, &l.Category, &l.CopyleftStrength, &l.Family, &l.Deprecated)
	return l, err
}

// AllLicenses returns all licenses ordered by id
func (d *DB) AllLicenses() ([]License, error) {
	rows, err := d.conn.Query(`
		SELECT id, display_name, category, copyleft_strength, family, deprecated
		FROM licenses ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}
	return licenses, rows.Err()
}

// AllObligations returns all obligations ordered by id
func (d *DB) AllObligations() ([]Obligation, error) {
	rows, err := d.conn.Query(`SELECT id, name, description, effort FROM obligations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Obligation
	for rows.Next() {
		var o Obligation
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.Effort); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// AllRights returns all rights ordered by id
func (d *DB) AllRights() ([]Right, error) {
	rows, err := d.conn.Query(`SELECT id, name, description FROM rights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Right
	for rows.Next() {
		var r Right
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AllLicenseObligations returns every obligation assignment in insertion order
func (d *DB) AllLicenseObligations() ([]LicenseObligation, error) {
	rows, err := d.conn.Query(`
		SELECT license_id, obligation_id, scope
		FROM license_obligations ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LicenseObligation
	for rows.Next() {
		var lo LicenseObligation
		if err := rows.Scan(&lo.LicenseID, &lo.ObligationID, &lo.Scope); err != nil {
			return nil, err
		}
		out = append(out, lo)
	}
	return out, rows.Err()
}

// AllLicenseRights returns every right assignment in insertion order
func (d *DB) AllLicenseRights() ([]LicenseRight, error) {
	rows, err := d.conn.Query(`SELECT license_id, right_id FROM license_rights ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LicenseRight
	for rows.Next() {
		var lr LicenseRight
		if err := rows.Scan(&lr.LicenseID, &lr.RightID); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}
