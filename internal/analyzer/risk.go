package analyzer

import (
	"math"

	"licensegraph/internal/graph"
)

// RiskBreakdown shows the sub-scores of the risk formula
type RiskBreakdown struct {
	Copyleft  float64 `json:"copyleft"`
	Conflicts float64 `json:"conflicts"`
	Unknown   float64 `json:"unknown"`
}

// Config holds risk weights
type Config struct {
	// CategoryWeights is the copyleft sub-score contributed by the most
	// restrictive category present. Licenses missing from the graph use the
	// UNKNOWN weight.
	CategoryWeights map[graph.Category]float64
	BlockingWeight  float64 // per BLOCKING conflict
	ReviewWeight    float64 // per REVIEW conflict
	ConflictCap     float64
	UnknownWeight   float64 // scaled by the share of unknown licenses
}

// DefaultConfig keeps an all-permissive tree at 0.05 and any tree with a
// blocking strong copyleft conflict at 0.7 or more.
func DefaultConfig() *Config {
	return &Config{
		CategoryWeights: map[graph.Category]float64{
			graph.CategoryPublicDomain:    0.0,
			graph.CategoryPermissive:      0.05,
			graph.CategoryWeakCopyleft:    0.2,
			graph.CategoryUnknown:         0.25,
			graph.CategoryProprietary:     0.3,
			graph.CategoryStrongCopyleft:  0.35,
			graph.CategoryNetworkCopyleft: 0.45,
		},
		BlockingWeight: 0.35,
		ReviewWeight:   0.05,
		ConflictCap:    0.45,
		UnknownWeight:  0.1,
	}
}

// computeRisk returns the composite score in [0,1] and its parts
func computeRisk(g *graph.Graph, a *DependencyTreeAnalysis, config *Config) (float64, RiskBreakdown) {
	var b RiskBreakdown
	if len(a.UniqueLicenses) == 0 {
		return 0, b
	}

	for _, id := range a.UniqueLicenses {
		cat := graph.CategoryUnknown
		if l, ok := g.GetLicense(id); ok {
			cat = l.Category
		}
		b.Copyleft = math.Max(b.Copyleft, config.CategoryWeights[cat])
	}

	conflicts := float64(a.BlockingConflicts())*config.BlockingWeight + float64(a.ReviewConflicts())*config.ReviewWeight
	b.Conflicts = math.Min(conflicts, config.ConflictCap)

	b.Unknown = config.UnknownWeight * float64(len(a.UnknownLicenses)) / float64(len(a.UniqueLicenses))

	return clamp(b.Copyleft+b.Conflicts+b.Unknown, 0, 1), b
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
