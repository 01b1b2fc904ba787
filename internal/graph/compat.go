package graph

// Basis names the rule that produced a compatibility verdict
type Basis string

const (
	BasisIdentical        Basis = "identical_license"
	BasisEdge             Basis = "compatibility_edge"
	BasisBothPermissive   Basis = "both_permissive"
	BasisPublicDomain     Basis = "public_domain"
	BasisCopyleftGoverns  Basis = "copyleft_governs"
	BasisStrongCopyleft   Basis = "distinct_strong_copyleft"
	BasisInsufficientData Basis = "insufficient_data"
)

// CompatibilityResult is the verdict for combining LicenseA with LicenseB
type CompatibilityResult struct {
	LicenseA        string             `json:"license_a"`
	LicenseB        string             `json:"license_b"`
	Compatible      bool               `json:"compatible"`
	Level           CompatibilityLevel `json:"level"`
	DominantLicense string             `json:"dominant_license,omitempty"`
	RequiresReview  bool               `json:"requires_review"`
	Basis           Basis              `json:"basis"`
	EdgeID          string             `json:"edge_id,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// CheckCompatibility decides whether idA can be combined with idB. Rules apply
// in order: identical ids, a direct edge, both permissive, public domain with
// permissive or public domain, permissive or public domain with copyleft, two
// distinct strong copyleft licenses. Anything else, including an id the graph
// does not know, is UNKNOWN and flagged for review.
func (g *Graph) CheckCompatibility(idA, idB string) CompatibilityResult {
	a, b := NormalizeID(idA), NormalizeID(idB)
	res := CompatibilityResult{LicenseA: a, LicenseB: b}

	if a == b {
		return res.with(LevelFull, BasisIdentical)
	}

	if e, ok := g.lookup[edgeKey{a, b}]; ok {
		res = res.with(e.Level, BasisEdge)
		res.DominantLicense = e.DominantLicenseID
		res.EdgeID = e.ID
		res.Notes = e.Notes
		res.RequiresReview = e.Level == LevelUnknown || (e.Level == LevelConditional && e.DominantLicenseID == "")
		return res
	}

	la, okA := g.licenses[a]
	lb, okB := g.licenses[b]
	if !okA || !okB {
		return res.unknown()
	}

	switch {
	case la.Category == CategoryPermissive && lb.Category == CategoryPermissive:
		return res.with(LevelFull, BasisBothPermissive)
	case la.Category.unrestricted() && lb.Category.unrestricted():
		return res.with(LevelFull, BasisPublicDomain)
	case la.Category.unrestricted() && lb.Category.IsCopyleft():
		res = res.with(LevelConditional, BasisCopyleftGoverns)
		res.DominantLicense = lb.ID
		return res
	case lb.Category.unrestricted() && la.Category.IsCopyleft():
		res = res.with(LevelConditional, BasisCopyleftGoverns)
		res.DominantLicense = la.ID
		return res
	case la.Category == CategoryStrongCopyleft && lb.Category == CategoryStrongCopyleft:
		return res.with(LevelIncompatible, BasisStrongCopyleft)
	}

	return res.unknown()
}

func (r CompatibilityResult) with(level CompatibilityLevel, basis Basis) CompatibilityResult {
	r.Level = level
	r.Compatible = level.Compatible()
	r.Basis = basis
	return r
}

func (r CompatibilityResult) unknown() CompatibilityResult {
	r = r.with(LevelUnknown, BasisInsufficientData)
	r.RequiresReview = true
	return r
}

// unrestricted reports whether a license asks for at most attribution, so it
// never governs a combined work.
func (c Category) unrestricted() bool {
	return c == CategoryPermissive || c == CategoryPublicDomain
}
