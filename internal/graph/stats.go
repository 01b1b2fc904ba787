package graph

import "sort"

// Statistics summarizes the contents of a graph
type Statistics struct {
	TotalLicenses         int                        `json:"total_licenses"`
	TotalObligations      int                        `json:"total_obligations"`
	TotalRights           int                        `json:"total_rights"`
	TotalEdges            int                        `json:"total_edges"`
	DeprecatedLicenses    int                        `json:"deprecated_licenses"`
	CompatibilityClusters int                        `json:"compatibility_clusters"`
	Families              []string                   `json:"families"`
	LicensesByCategory    map[Category]int           `json:"licenses_by_category"`
	EdgesByLevel          map[CompatibilityLevel]int `json:"edges_by_level"`
}

// GetStatistics counts licenses, obligations, rights and authored edges
func (g *Graph) GetStatistics() Statistics {
	stats := Statistics{
		TotalLicenses:      len(g.licenses),
		TotalObligations:   len(g.obligations),
		TotalRights:        len(g.rights),
		TotalEdges:         len(g.edges),
		LicensesByCategory: make(map[Category]int),
		EdgesByLevel:       make(map[CompatibilityLevel]int),
	}

	families := make(map[string]bool)
	for _, l := range g.licenses {
		stats.LicensesByCategory[l.Category]++
		if l.Deprecated {
			stats.DeprecatedLicenses++
		}
		if l.Family != "" {
			families[l.Family] = true
		}
	}
	stats.Families = make([]string, 0, len(families))
	for f := range families {
		stats.Families = append(stats.Families, f)
	}
	sort.Strings(stats.Families)

	for _, e := range g.edges {
		stats.EdgesByLevel[e.Level]++
	}
	if len(g.licenses) > 0 {
		stats.CompatibilityClusters = len(g.CompatibilityClusters())
	}
	return stats
}
