package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"licensegraph/internal/graph"
)

// recommend derives remediation steps from a finished analysis, most urgent first
func recommend(g *graph.Graph, a *DependencyTreeAnalysis) []Recommendation {
	recs := []Recommendation{}

	for _, c := range a.Conflicts {
		switch c.Severity {
		case SeverityBlocking:
			msg := fmt.Sprintf("%s and %s cannot be combined; replace or isolate one of: %s",
				c.LicenseA, c.LicenseB, strings.Join(c.Dependencies, ", "))
			if c.Notes != "" {
				msg += " (" + c.Notes + ")"
			}
			recs = append(recs, Recommendation{
				Type:     RecommendResolveConflict,
				Priority: PriorityHigh,
				Licenses: []string{c.LicenseA, c.LicenseB},
				Message:  msg,
			})
		case SeverityReview:
			recs = append(recs, Recommendation{
				Type:     RecommendReviewCompatibility,
				Priority: PriorityMedium,
				Licenses: []string{c.LicenseA, c.LicenseB},
				Message:  fmt.Sprintf("have counsel confirm %s may be combined with %s", c.LicenseA, c.LicenseB),
			})
		}
	}

	for _, id := range a.UnknownLicenses {
		recs = append(recs, Recommendation{
			Type:     RecommendIdentifyLicense,
			Priority: PriorityHigh,
			Licenses: []string{id},
			Message:  fmt.Sprintf("license %s is not in the reference catalog; identify it before release", id),
		})
	}

	for _, o := range a.Obligations.Obligations {
		if o.Effort != graph.EffortHigh {
			continue
		}
		recs = append(recs, Recommendation{
			Type:         RecommendFulfillObligation,
			Priority:     PriorityMedium,
			ObligationID: o.ObligationID,
			Scope:        o.Scope,
			Licenses:     o.Sources,
			Message:      fmt.Sprintf("%s (scope %s) required by %s", o.Name, o.Scope, strings.Join(o.Sources, ", ")),
		})
	}

	for _, id := range a.UniqueLicenses {
		l, ok := g.GetLicense(id)
		if !ok || !l.Deprecated {
			continue
		}
		recs = append(recs, Recommendation{
			Type:     RecommendReplaceDeprecated,
			Priority: PriorityLow,
			Licenses: []string{id},
			Message:  fmt.Sprintf("%s is a deprecated SPDX identifier; ask upstream to declare a current one", id),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if pi, pj := priorityRank[recs[i].Priority], priorityRank[recs[j].Priority]; pi != pj {
			return pi < pj
		}
		if recs[i].Type != recs[j].Type {
			return recs[i].Type < recs[j].Type
		}
		return subject(recs[i]) < subject(recs[j])
	})
	return recs
}

func subject(r Recommendation) string {
	if r.ObligationID != "" {
		return r.ObligationID
	}
	return strings.Join(r.Licenses, "+")
}
