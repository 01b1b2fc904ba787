package db

// scanEdge scans a row into an Edge. The row must have all 8 columns in standard order.
func scanEdge(scanner rowScanner) (Edge, error) {
	var e Edge
	err := scanner.Scan(
		&e.ID, &e.Position, &e.SourceID, &e.TargetID,
		&e.Level, &e.Direction, &e.DominantLicenseID, &e.Notes,
	)
	return e, err
}

// AllEdges returns all edges in authored order
func (d *DB) AllEdges() ([]Edge, error) {
	rows, err := d.conn.Query(`
		SELECT id, position, source_id, target_id, level, direction,
		       dominant_license_id, notes
		FROM compatibility_edges ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

