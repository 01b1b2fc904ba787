package graph

// LicenseDetails is the composite view of one license
type LicenseDetails struct {
	License           LicenseNode            `json:"license"`
	Obligations       []ObligationAssignment `json:"obligations"`
	Rights            []Right                `json:"rights"`
	CompatibleWith    []string               `json:"compatible_with"`
	DirectlyRelatedTo []string               `json:"directly_related_to"`
}

// GetLicenseDetails returns the license with its obligations, rights and the
// licenses reachable through one direct edge. CompatibleWith keeps only the
// neighbors whose edge is not INCOMPATIBLE. Returns nil for an unknown id.
func (g *Graph) GetLicenseDetails(id string) *LicenseDetails {
	key := NormalizeID(id)
	l, ok := g.licenses[key]
	if !ok {
		return nil
	}

	related := g.Neighbors(key)
	compatible := make([]string, 0, len(related))
	for _, n := range related {
		if g.lookup[edgeKey{key, n}].Level != LevelIncompatible {
			compatible = append(compatible, n)
		}
	}

	return &LicenseDetails{
		License:           *l,
		Obligations:       g.GetObligationsForLicense(key),
		Rights:            g.GetRightsForLicense(key),
		CompatibleWith:    compatible,
		DirectlyRelatedTo: related,
	}
}
