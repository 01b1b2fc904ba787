package analyzer

import (
	"sort"

	"licensegraph/internal/graph"
)

// noAssertion stands in for dependencies that arrive without a license id
const noAssertion = "NOASSERTION"

// restrictiveness ranks categories for picking the dominant license
var restrictiveness = map[graph.Category]int{
	graph.CategoryNetworkCopyleft: 3,
	graph.CategoryStrongCopyleft:  3,
	graph.CategoryWeakCopyleft:    2,
	graph.CategoryProprietary:     2,
	graph.CategoryPermissive:      1,
	graph.CategoryPublicDomain:    0,
	graph.CategoryUnknown:         0,
}

// Analyze evaluates a flat list of resolved dependencies against g. It never
// fails: licenses missing from the graph are reported and flagged for review.
// A nil config uses DefaultConfig.
func Analyze(g *graph.Graph, deps []DependencyLicense, config *Config) *DependencyTreeAnalysis {
	if config == nil {
		config = DefaultConfig()
	}

	a := &DependencyTreeAnalysis{
		TotalDependencies:   len(deps),
		UniqueLicenses:      []string{},
		LicenseDistribution: make(map[string]int),
		Conflicts:           []Conflict{},
		Recommendations:     []Recommendation{},
	}

	carriers := make(map[string][]string) // license -> dependency names
	for _, d := range deps {
		id := graph.NormalizeID(d.LicenseID)
		if id == "" {
			id = noAssertion
		}
		if a.LicenseDistribution[id] == 0 {
			a.UniqueLicenses = append(a.UniqueLicenses, id)
		}
		a.LicenseDistribution[id]++
		carriers[id] = append(carriers[id], dependencyLabel(d))
	}
	sort.Strings(a.UniqueLicenses)

	for _, id := range a.UniqueLicenses {
		if l, ok := g.GetLicense(id); !ok || l.Category == graph.CategoryUnknown {
			a.UnknownLicenses = append(a.UnknownLicenses, id)
		}
	}

	for i := 0; i < len(a.UniqueLicenses); i++ {
		for j := i + 1; j < len(a.UniqueLicenses); j++ {
			if c, ok := evaluatePair(g, a.UniqueLicenses[i], a.UniqueLicenses[j]); ok {
				c.Dependencies = append(append([]string{}, carriers[c.LicenseA]...), carriers[c.LicenseB]...)
				a.Conflicts = append(a.Conflicts, c)
			}
		}
	}

	a.DominantLicense = dominantLicense(g, a.UniqueLicenses)
	a.Obligations = g.AggregateObligations(a.UniqueLicenses)

	switch {
	case a.BlockingConflicts() > 0:
		a.ComplianceStatus = StatusBlocked
	case a.ReviewConflicts() > 0 || len(a.UnknownLicenses) > 0:
		a.ComplianceStatus = StatusReviewRequired
	default:
		a.ComplianceStatus = StatusCompliant
	}

	a.RiskScore, a.RiskBreakdown = computeRisk(g, a, config)
	a.Recommendations = recommend(g, a)
	return a
}

// evaluatePair resolves an unordered pair. The pair is checked in both
// directions and the more favorable verdict is kept, so a one-way edge
// authored either way is honoured. Returns false when the pair is not a
// conflict.
func evaluatePair(g *graph.Graph, a, b string) (Conflict, bool) {
	r := g.CheckCompatibility(a, b)
	if !r.Compatible || r.RequiresReview {
		if rev := g.CheckCompatibility(b, a); better(rev, r) {
			r = rev
		}
	}

	c := Conflict{
		LicenseA:        a,
		LicenseB:        b,
		Level:           r.Level,
		DominantLicense: r.DominantLicense,
		Basis:           r.Basis,
		Notes:           r.Notes,
	}
	switch {
	case r.Level == graph.LevelIncompatible:
		c.Severity = SeverityBlocking
	case (r.Level == graph.LevelConditional || r.Level == graph.LevelUnknown) && r.RequiresReview:
		c.Severity = SeverityReview
	default:
		return Conflict{}, false
	}
	return c, true
}

func better(x, y graph.CompatibilityResult) bool {
	if x.Compatible != y.Compatible {
		return x.Compatible
	}
	if x.RequiresReview != y.RequiresReview {
		return !x.RequiresReview
	}
	return x.Level != y.Level && graph.Weaker(x.Level, y.Level) == y.Level
}

// dominantLicense picks the most restrictive license present; ties go to the
// lowest canonical id. ids must be sorted.
func dominantLicense(g *graph.Graph, ids []string) string {
	best, bestRank := "", -1
	for _, id := range ids {
		rank := restrictiveness[graph.CategoryUnknown]
		if l, ok := g.GetLicense(id); ok {
			rank = restrictiveness[l.Category]
		}
		if rank > bestRank {
			best, bestRank = id, rank
		}
	}
	return best
}

func dependencyLabel(d DependencyLicense) string {
	name := d.DependencyName
	if name == "" {
		name = d.DependencyID
	}
	if d.DependencyVersion != "" {
		return name + "@" + d.DependencyVersion
	}
	return name
}
