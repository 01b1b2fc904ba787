package catalog

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"licensegraph/internal/db"
	"licensegraph/internal/graph"
)

// FromGraph rebuilds a catalog from a built graph. Ids are canonical and
// every edge carries its id, so the result is stable across exports.
func FromGraph(g *graph.Graph) *Catalog {
	c := &Catalog{
		Licenses:    g.Licenses(),
		Obligations: g.Obligations(),
		Rights:      g.Rights(),
		Edges:       g.Edges(),
	}
	for _, l := range c.Licenses {
		for _, a := range g.GetObligationsForLicense(l.ID) {
			c.LicenseObligations = append(c.LicenseObligations, ObligationLink{
				LicenseID:    l.ID,
				ObligationID: a.Obligation.ID,
				Scope:        a.Scope,
			})
		}
		for _, r := range g.GetRightsForLicense(l.ID) {
			c.LicenseRights = append(c.LicenseRights, RightLink{LicenseID: l.ID, RightID: r.ID})
		}
	}
	return c
}

// FromDB loads a catalog from a snapshot database
func FromDB(d *db.DB) (*Catalog, error) {
	s, err := d.ReadSnapshot()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Licenses:           make([]graph.LicenseNode, 0, len(s.Licenses)),
		Obligations:        make([]graph.Obligation, 0, len(s.Obligations)),
		Rights:             make([]graph.Right, 0, len(s.Rights)),
		Edges:              make([]graph.CompatibilityEdge, 0, len(s.Edges)),
		LicenseObligations: make([]ObligationLink, 0, len(s.LicenseObligations)),
		LicenseRights:      make([]RightLink, 0, len(s.LicenseRights)),
	}
	for _, l := range s.Licenses {
		c.Licenses = append(c.Licenses, graph.LicenseNode{
			ID:               l.ID,
			DisplayName:      l.DisplayName,
			Category:         graph.Category(l.Category),
			CopyleftStrength: graph.CopyleftStrength(l.CopyleftStrength),
			Family:           deref(l.Family),
			Deprecated:       l.Deprecated,
		})
	}
	for _, o := range s.Obligations {
		c.Obligations = append(c.Obligations, graph.Obligation{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
			Effort:      graph.Effort(o.Effort),
		})
	}
	for _, r := range s.Rights {
		c.Rights = append(c.Rights, graph.Right{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	for _, e := range s.Edges {
		c.Edges = append(c.Edges, graph.CompatibilityEdge{
			ID:                e.ID,
			SourceID:          e.SourceID,
			TargetID:          e.TargetID,
			Level:             graph.CompatibilityLevel(e.Level),
			Direction:         graph.Direction(e.Direction),
			DominantLicenseID: deref(e.DominantLicenseID),
			Notes:             deref(e.Notes),
		})
	}
	for _, lo := range s.LicenseObligations {
		c.LicenseObligations = append(c.LicenseObligations, ObligationLink{
			LicenseID:    lo.LicenseID,
			ObligationID: lo.ObligationID,
			Scope:        graph.Scope(lo.Scope),
		})
	}
	for _, lr := range s.LicenseRights {
		c.LicenseRights = append(c.LicenseRights, RightLink{LicenseID: lr.LicenseID, RightID: lr.RightID})
	}
	return c, nil
}

// WriteDB stores c as the database's snapshot. Edges without an id get the
// id the graph would assign them.
func (c *Catalog) WriteDB(d *db.DB) error {
	s := &db.Snapshot{}
	for _, l := range c.Licenses {
		s.Licenses = append(s.Licenses, db.License{
			ID:               graph.NormalizeID(l.ID),
			DisplayName:      l.DisplayName,
			Category:         string(l.Category),
			CopyleftStrength: string(l.CopyleftStrength),
			Family:           ptr(l.Family),
			Deprecated:       l.Deprecated,
		})
	}
	for _, o := range c.Obligations {
		s.Obligations = append(s.Obligations, db.Obligation{
			ID:          graph.NormalizeID(o.ID),
			Name:        o.Name,
			Description: o.Description,
			Effort:      string(o.Effort),
		})
	}
	for _, r := range c.Rights {
		s.Rights = append(s.Rights, db.Right{ID: graph.NormalizeID(r.ID), Name: r.Name, Description: r.Description})
	}
	for i, e := range c.Edges {
		id := e.ID
		if id == "" {
			id = graph.EdgeID(e.SourceID, e.TargetID)
		}
		s.Edges = append(s.Edges, db.Edge{
			ID:                id,
			Position:          i,
			SourceID:          graph.NormalizeID(e.SourceID),
			TargetID:          graph.NormalizeID(e.TargetID),
			Level:             string(e.Level),
			Direction:         string(e.Direction),
			DominantLicenseID: ptr(graph.NormalizeID(e.DominantLicenseID)),
			Notes:             ptr(e.Notes),
		})
	}
	for _, lo := range c.LicenseObligations {
		s.LicenseObligations = append(s.LicenseObligations, db.LicenseObligation{
			LicenseID:    graph.NormalizeID(lo.LicenseID),
			ObligationID: graph.NormalizeID(lo.ObligationID),
			Scope:        string(lo.Scope),
		})
	}
	for _, lr := range c.LicenseRights {
		s.LicenseRights = append(s.LicenseRights, db.LicenseRight{
			LicenseID: graph.NormalizeID(lr.LicenseID),
			RightID:   graph.NormalizeID(lr.RightID),
		})
	}

	if err := d.InitSchema(); err != nil {
		return err
	}
	if err := d.WriteSnapshot(s); err != nil {
		return fmt.Errorf("writing catalog snapshot: %w", err)
	}
	return nil
}

// LoadFile builds a graph from the snapshot database at path
func LoadFile(path string, logger *zap.Logger) (*graph.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	// opening a missing file would create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	d, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	c, err := FromDB(d)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", path, err)
	}
	logger.Debug("catalog snapshot read", zap.String("path", path), zap.Int("licenses", len(c.Licenses)))
	return Build(c, logger)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
