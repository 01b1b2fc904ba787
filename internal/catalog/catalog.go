// Package catalog holds license reference data and turns it into a frozen
// graph.Graph. Every reference problem is reported at build time so that
// query code can rely on referential integrity.
package catalog

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"licensegraph/internal/graph"
)

// ObligationLink attaches an obligation to a license at a scope
type ObligationLink struct {
	LicenseID    string      `json:"license_id" yaml:"license_id"`
	ObligationID string      `json:"obligation_id" yaml:"obligation_id"`
	Scope        graph.Scope `json:"scope" yaml:"scope"`
}

// RightLink attaches a right to a license
type RightLink struct {
	LicenseID string `json:"license_id" yaml:"license_id"`
	RightID   string `json:"right_id" yaml:"right_id"`
}

// Catalog is a complete reference definition set
type Catalog struct {
	Licenses           []graph.LicenseNode       `json:"licenses"`
	Obligations        []graph.Obligation        `json:"obligations"`
	Rights             []graph.Right             `json:"rights"`
	Edges              []graph.CompatibilityEdge `json:"edges"`
	LicenseObligations []ObligationLink          `json:"license_obligations"`
	LicenseRights      []RightLink               `json:"license_rights"`
}

// Build validates c and loads it into a new graph. Every defect is collected
// and returned together; on error no graph is returned. The returned graph is
// frozen.
func Build(c *Catalog, logger *zap.Logger) (*graph.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		return nil, fmt.Errorf("building license graph: nil catalog")
	}

	g := graph.New()
	var errs error

	for _, l := range c.Licenses {
		errs = multierr.Append(errs, g.AddLicense(l))
	}
	for _, o := range c.Obligations {
		errs = multierr.Append(errs, g.AddObligation(o))
	}
	for _, r := range c.Rights {
		errs = multierr.Append(errs, g.AddRight(r))
	}
	logger.Debug("catalog nodes loaded",
		zap.Int("licenses", len(c.Licenses)),
		zap.Int("obligations", len(c.Obligations)),
		zap.Int("rights", len(c.Rights)),
		zap.Int("errors", len(multierr.Errors(errs))),
	)

	for _, e := range c.Edges {
		errs = multierr.Append(errs, g.AddEdge(e))
	}
	for _, link := range c.LicenseObligations {
		errs = multierr.Append(errs, g.AssignObligation(link.LicenseID, link.ObligationID, link.Scope))
	}
	for _, link := range c.LicenseRights {
		errs = multierr.Append(errs, g.AssignRight(link.LicenseID, link.RightID))
	}

	if errs != nil {
		logger.Error("catalog validation failed", zap.Int("errors", len(multierr.Errors(errs))), zap.Error(errs))
		return nil, fmt.Errorf("building license graph: %w", errs)
	}

	g.Freeze()
	stats := g.GetStatistics()
	logger.Info("license graph built",
		zap.Int("licenses", stats.TotalLicenses),
		zap.Int("obligations", stats.TotalObligations),
		zap.Int("rights", stats.TotalRights),
		zap.Int("edges", stats.TotalEdges),
		zap.Int("families", len(stats.Families)),
	)
	return g, nil
}

// Load builds the graph from the built-in reference catalog
func Load(logger *zap.Logger) (*graph.Graph, error) {
	return Build(Reference(), logger)
}
