package graph

import "sort"

// AggregatedObligation merges one obligation across several licenses. Scope
// is the most restrictive scope any source license attaches to it.
type AggregatedObligation struct {
	ObligationID string   `json:"obligation_id"`
	Name         string   `json:"name"`
	Effort       Effort   `json:"effort"`
	Sources      []string `json:"sources"`
	Scope        Scope    `json:"scope"`
}

// ObligationSummary is the result of AggregateObligations
type ObligationSummary struct {
	Obligations     []AggregatedObligation `json:"obligations"`
	TotalLicenses   int                    `json:"total_licenses"`
	UnknownLicenses []string               `json:"unknown_licenses,omitempty"`
}

// Find returns the aggregated entry for an obligation id
func (s *ObligationSummary) Find(obligationID string) (AggregatedObligation, bool) {
	id := NormalizeID(obligationID)
	for _, o := range s.Obligations {
		if o.ObligationID == id {
			return o, true
		}
	}
	return AggregatedObligation{}, false
}

// GetObligationsForLicense returns the obligations attached to a license in
// assignment order. Unknown licenses have none.
func (g *Graph) GetObligationsForLicense(id string) []ObligationAssignment {
	refs := g.licenseObligations[NormalizeID(id)]
	out := make([]ObligationAssignment, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ObligationAssignment{
			Obligation: *g.obligations[ref.obligationID],
			Scope:      ref.scope,
		})
	}
	return out
}

// GetRightsForLicense returns the rights granted by a license in assignment order
func (g *Graph) GetRightsForLicense(id string) []Right {
	ids := g.licenseRights[NormalizeID(id)]
	out := make([]Right, 0, len(ids))
	for _, rid := range ids {
		out = append(out, *g.rights[rid])
	}
	return out
}

// AggregateObligations merges the obligations of every license in ids. Input
// ids are canonicalized and deduplicated keeping first occurrence, sources
// follow that order and entries are ordered by obligation id.
func (g *Graph) AggregateObligations(ids []string) ObligationSummary {
	summary := ObligationSummary{Obligations: []AggregatedObligation{}}
	seen := make(map[string]bool, len(ids))
	merged := make(map[string]*AggregatedObligation)

	for _, raw := range ids {
		id := NormalizeID(raw)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		summary.TotalLicenses++

		if _, ok := g.licenses[id]; !ok {
			summary.UnknownLicenses = append(summary.UnknownLicenses, id)
			continue
		}

		for _, ref := range g.licenseObligations[id] {
			agg, ok := merged[ref.obligationID]
			if !ok {
				ob := g.obligations[ref.obligationID]
				agg = &AggregatedObligation{
					ObligationID: ob.ID,
					Name:         ob.Name,
					Effort:       ob.Effort,
					Scope:        ref.scope,
				}
				merged[ref.obligationID] = agg
			}
			agg.Sources = append(agg.Sources, id)
			agg.Scope = MoreRestrictive(agg.Scope, ref.scope)
		}
	}

	for _, agg := range merged {
		summary.Obligations = append(summary.Obligations, *agg)
	}
	sort.Slice(summary.Obligations, func(i, j int) bool {
		return summary.Obligations[i].ObligationID < summary.Obligations[j].ObligationID
	})
	return summary
}
