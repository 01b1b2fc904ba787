package catalog

import "licensegraph/internal/graph"

// Reference returns the curated catalog the engine ships with. Each call
// returns a fresh value.
func Reference() *Catalog {
	c := &Catalog{
		Licenses:    referenceLicenses(),
		Obligations: referenceObligations(),
		Rights:      referenceRights(),
	}
	c.Edges = referenceEdges()
	c.LicenseObligations, c.LicenseRights = referenceAssignments()
	return c
}

func lic(id, name string, cat graph.Category, family string) graph.LicenseNode {
	strength := graph.CopyleftNone
	switch cat {
	case graph.CategoryWeakCopyleft:
		strength = graph.CopyleftWeak
	case graph.CategoryStrongCopyleft:
		strength = graph.CopyleftStrong
	case graph.CategoryNetworkCopyleft:
		strength = graph.CopyleftNetwork
	}
	return graph.LicenseNode{ID: id, DisplayName: name, Category: cat, CopyleftStrength: strength, Family: family}
}

func deprecated(l graph.LicenseNode) graph.LicenseNode {
	l.Deprecated = true
	return l
}

func referenceLicenses() []graph.LicenseNode {
	const (
		permissive = graph.CategoryPermissive
		weak       = graph.CategoryWeakCopyleft
		strong     = graph.CategoryStrongCopyleft
		network    = graph.CategoryNetworkCopyleft
	)
	return []graph.LicenseNode{
		lic("MIT", "MIT License", permissive, "MIT"),
		lic("Apache-2.0", "Apache License 2.0", permissive, "Apache"),
		lic("BSD-2-Clause", "BSD 2-Clause \"Simplified\" License", permissive, "BSD"),
		lic("BSD-3-Clause", "BSD 3-Clause \"New\" or \"Revised\" License", permissive, "BSD"),
		lic("0BSD", "BSD Zero Clause License", permissive, "BSD"),
		lic("ISC", "ISC License", permissive, "ISC"),
		lic("Zlib", "zlib License", permissive, "Zlib"),
		lic("BSL-1.0", "Boost Software License 1.0", permissive, "Boost"),

		lic("Unlicense", "The Unlicense", graph.CategoryPublicDomain, "Public Domain"),
		lic("CC0-1.0", "Creative Commons Zero v1.0 Universal", graph.CategoryPublicDomain, "Creative Commons"),

		lic("LGPL-2.1-only", "GNU Lesser General Public License v2.1 only", weak, "LGPL"),
		lic("LGPL-2.1-or-later", "GNU Lesser General Public License v2.1 or later", weak, "LGPL"),
		lic("LGPL-3.0-only", "GNU Lesser General Public License v3.0 only", weak, "LGPL"),
		lic("LGPL-3.0-or-later", "GNU Lesser General Public License v3.0 or later", weak, "LGPL"),
		lic("MPL-2.0", "Mozilla Public License 2.0", weak, "MPL"),
		lic("EPL-2.0", "Eclipse Public License 2.0", weak, "EPL"),
		lic("CDDL-1.0", "Common Development and Distribution License 1.0", weak, "CDDL"),
		deprecated(lic("LGPL-2.1", "GNU Library General Public License v2.1 (deprecated id)", weak, "LGPL")),

		lic("GPL-2.0-only", "GNU General Public License v2.0 only", strong, "GPL"),
		lic("GPL-2.0-or-later", "GNU General Public License v2.0 or later", strong, "GPL"),
		lic("GPL-3.0-only", "GNU General Public License v3.0 only", strong, "GPL"),
		lic("GPL-3.0-or-later", "GNU General Public License v3.0 or later", strong, "GPL"),
		deprecated(lic("GPL-2.0", "GNU General Public License v2.0 (deprecated id)", strong, "GPL")),
		deprecated(lic("GPL-3.0", "GNU General Public License v3.0 (deprecated id)", strong, "GPL")),

		lic("AGPL-3.0-only", "GNU Affero General Public License v3.0 only", network, "AGPL"),
		lic("AGPL-3.0-or-later", "GNU Affero General Public License v3.0 or later", network, "AGPL"),

		lic("Proprietary", "Proprietary / commercial license", graph.CategoryProprietary, "Proprietary"),
		lic("NOASSERTION", "No license asserted", graph.CategoryUnknown, ""),
	}
}

func referenceObligations() []graph.Obligation {
	return []graph.Obligation{
		{ID: "ATTRIBUTION", Name: "Attribution", Effort: graph.EffortLow,
			Description: "Retain copyright notices and credit the original authors."},
		{ID: "INCLUDE_LICENSE", Name: "Include license text", Effort: graph.EffortLow,
			Description: "Ship a copy of the license text with every distribution."},
		{ID: "INCLUDE_NOTICE", Name: "Include NOTICE file", Effort: graph.EffortLow,
			Description: "Propagate the contents of an accompanying NOTICE file."},
		{ID: "STATE_CHANGES", Name: "State changes", Effort: graph.EffortLow,
			Description: "Mark modified files with a notice describing the changes."},
		{ID: "SOURCE_DISCLOSURE", Name: "Disclose source", Effort: graph.EffortHigh,
			Description: "Make the corresponding source code available to recipients."},
		{ID: "SAME_LICENSE", Name: "Same license", Effort: graph.EffortHigh,
			Description: "Distribute modifications or the combined work under the same license."},
		{ID: "NETWORK_DISCLOSURE", Name: "Network use is distribution", Effort: graph.EffortHigh,
			Description: "Offer source code to users who interact with the software over a network."},
		{ID: "LIBRARY_RELINKING", Name: "Allow relinking", Effort: graph.EffortHigh,
			Description: "Let recipients relink the work against a modified version of the library."},
	}
}

func referenceRights() []graph.Right {
	return []graph.Right{
		{ID: "COMMERCIAL_USE", Name: "Commercial use", Description: "Use the software for commercial purposes."},
		{ID: "MODIFICATION", Name: "Modification", Description: "Modify the software."},
		{ID: "DISTRIBUTION", Name: "Distribution", Description: "Distribute original or modified copies."},
		{ID: "PRIVATE_USE", Name: "Private use", Description: "Use and modify the software privately."},
		{ID: "PATENT_GRANT", Name: "Patent grant", Description: "Contributors grant a license to their relevant patents."},
		{ID: "SUBLICENSING", Name: "Sublicensing", Description: "Grant others rights under different terms."},
	}
}

func full(a, b string) graph.CompatibilityEdge {
	return graph.CompatibilityEdge{SourceID: a, TargetID: b, Level: graph.LevelFull, Direction: graph.DirectionBidirectional}
}

// conditional is a bidirectional CONDITIONAL edge; dominant may be empty when
// the governing license depends on choices made by the distributor.
func conditional(a, b, dominant, notes string) graph.CompatibilityEdge {
	return graph.CompatibilityEdge{
		SourceID: a, TargetID: b,
		Level: graph.LevelConditional, Direction: graph.DirectionBidirectional,
		DominantLicenseID: dominant, Notes: notes,
	}
}

// oneWay says code under from may be incorporated into a work under to
func oneWay(from, to, notes string) graph.CompatibilityEdge {
	return graph.CompatibilityEdge{
		SourceID: from, TargetID: to,
		Level: graph.LevelOneWay, Direction: graph.DirectionOneWay,
		Notes: notes,
	}
}

func incompatible(a, b, notes string) graph.CompatibilityEdge {
	return graph.CompatibilityEdge{
		SourceID: a, TargetID: b,
		Level: graph.LevelIncompatible, Direction: graph.DirectionBidirectional,
		Notes: notes,
	}
}

func referenceEdges() []graph.CompatibilityEdge {
	edges := []graph.CompatibilityEdge{
		full("MIT", "Apache-2.0"),
		full("MIT", "BSD-2-Clause"),
		full("MIT", "BSD-3-Clause"),
		full("MIT", "0BSD"),
		full("MIT", "ISC"),
		full("MIT", "Zlib"),
		full("MIT", "BSL-1.0"),
		full("BSD-3-Clause", "Apache-2.0"),
		full("MIT", "Unlicense"),
		full("MIT", "CC0-1.0"),

		full("GPL-2.0", "GPL-2.0-only"),
		full("GPL-3.0", "GPL-3.0-only"),
		full("LGPL-2.1", "LGPL-2.1-only"),
	}

	// Permissive code may be folded into a copyleft work, which then governs.
	for _, p := range []string{"MIT", "BSD-2-Clause", "BSD-3-Clause", "ISC"} {
		for _, c := range []string{
			"LGPL-2.1-only", "LGPL-3.0-only", "MPL-2.0",
			"GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0-only", "GPL-3.0-or-later",
			"AGPL-3.0-only",
		} {
			edges = append(edges, conditional(p, c, c, "combined work is distributed under "+c))
		}
	}
	edges = append(edges,
		conditional("MIT", "EPL-2.0", "EPL-2.0", "EPL-2.0 governs the combined module"),
		conditional("MIT", "CDDL-1.0", "CDDL-1.0", "CDDL-1.0 governs covered files"),
	)

	// Apache-2.0 patent and indemnity terms are GPLv3-compatible but not GPLv2-compatible.
	edges = append(edges,
		conditional("Apache-2.0", "GPL-3.0-only", "GPL-3.0-only", "combined work is distributed under GPL-3.0-only"),
		conditional("Apache-2.0", "GPL-3.0-or-later", "GPL-3.0-or-later", "combined work is distributed under GPL-3.0-or-later"),
		conditional("Apache-2.0", "GPL-2.0-or-later", "GPL-2.0-or-later", "combination must be distributed under GPL-3.0 or later"),
		conditional("Apache-2.0", "LGPL-3.0-only", "LGPL-3.0-only", "combined work is distributed under LGPL-3.0-only"),
		conditional("Apache-2.0", "AGPL-3.0-only", "AGPL-3.0-only", "combined work is distributed under AGPL-3.0-only"),
		conditional("Apache-2.0", "MPL-2.0", "MPL-2.0", "MPL-2.0 governs covered files"),
		incompatible("Apache-2.0", "GPL-2.0-only", "patent termination and indemnification clauses conflict with GPLv2"),
	)

	// GNU family: version pinning and "or later" upgrades.
	edges = append(edges,
		incompatible("GPL-2.0-only", "GPL-3.0-only", "GPLv2 lacks an upgrade clause; neither license permits the other's terms"),
		incompatible("GPL-2.0-only", "AGPL-3.0-only", "GPLv2-only code cannot be relicensed to AGPLv3"),
		incompatible("GPL-2.0-only", "LGPL-3.0-only", "LGPLv3 is GPLv3 plus permissions; incompatible with GPLv2-only"),
		incompatible("GPL-2.0", "GPL-3.0", "deprecated identifiers for GPL-2.0-only and GPL-3.0-only"),
		oneWay("GPL-2.0-or-later", "GPL-2.0-only", "recipient may choose version 2"),
		oneWay("GPL-2.0-or-later", "GPL-3.0-only", "recipient may choose version 3"),
		oneWay("GPL-2.0-or-later", "GPL-3.0-or-later", "upgrade to version 3 or later"),
		oneWay("GPL-3.0-or-later", "GPL-3.0-only", "recipient may choose version 3"),
		conditional("GPL-3.0-only", "AGPL-3.0-only", "AGPL-3.0-only", "GPLv3 section 13 allows combination; AGPL terms cover the network-facing work"),
		conditional("GPL-3.0-or-later", "AGPL-3.0-only", "AGPL-3.0-only", "GPLv3 section 13 allows combination; AGPL terms cover the network-facing work"),
		oneWay("AGPL-3.0-or-later", "AGPL-3.0-only", "recipient may choose version 3"),
		oneWay("LGPL-2.1-only", "GPL-2.0-only", "LGPLv2.1 section 3 permits conversion to GPLv2"),
		oneWay("LGPL-2.1-or-later", "GPL-2.0-or-later", "LGPLv2.1 section 3 permits conversion to GPL"),
		oneWay("LGPL-2.1-or-later", "GPL-3.0-only", "LGPLv2.1 section 3 permits conversion to GPL"),
		oneWay("LGPL-2.1-or-later", "LGPL-3.0-only", "recipient may choose version 3"),
		oneWay("LGPL-3.0-only", "GPL-3.0-only", "LGPLv3 is GPLv3 with additional permissions"),
		oneWay("LGPL-3.0-or-later", "GPL-3.0-or-later", "LGPLv3 is GPLv3 with additional permissions"),
		oneWay("LGPL-3.0-only", "AGPL-3.0-only", "via GPLv3 section 13"),
	)

	// File-level copyleft.
	edges = append(edges,
		oneWay("MPL-2.0", "GPL-2.0-or-later", "MPL-2.0 section 3.3 secondary license"),
		oneWay("MPL-2.0", "GPL-3.0-only", "MPL-2.0 section 3.3 secondary license"),
		oneWay("MPL-2.0", "LGPL-2.1-or-later", "MPL-2.0 section 3.3 secondary license"),
		oneWay("MPL-2.0", "AGPL-3.0-only", "MPL-2.0 section 3.3 secondary license"),
		conditional("EPL-2.0", "GPL-2.0-only", "", "only when the contributor designated GPL-2.0 as a secondary license"),
		conditional("EPL-2.0", "GPL-3.0-only", "", "only when the contributor designated a GPL secondary license"),
		incompatible("CDDL-1.0", "GPL-2.0-only", "file-level copyleft conflicts with GPL whole-work terms"),
		incompatible("CDDL-1.0", "GPL-3.0-only", "file-level copyleft conflicts with GPL whole-work terms"),
	)

	// Closed-source distribution.
	edges = append(edges,
		oneWay("MIT", "Proprietary", "permissive code may ship in closed products with attribution"),
		oneWay("Apache-2.0", "Proprietary", "permissive code may ship in closed products with NOTICE"),
		oneWay("BSD-3-Clause", "Proprietary", "permissive code may ship in closed products with attribution"),
		oneWay("BSD-2-Clause", "Proprietary", "permissive code may ship in closed products with attribution"),
		oneWay("ISC", "Proprietary", "permissive code may ship in closed products with attribution"),
		oneWay("Zlib", "Proprietary", "permissive code may ship in closed products; altered sources must be marked"),
		oneWay("BSL-1.0", "Proprietary", "attribution is not required for binary-only distribution"),
		oneWay("0BSD", "Proprietary", "no conditions on redistribution"),
		oneWay("Unlicense", "Proprietary", "public domain dedication"),
		oneWay("CC0-1.0", "Proprietary", "public domain dedication with fallback license"),
		conditional("LGPL-2.1-only", "Proprietary", "LGPL-2.1-only", "dynamic linking only; the library stays under LGPL"),
		conditional("LGPL-3.0-only", "Proprietary", "LGPL-3.0-only", "dynamic linking only; the library stays under LGPL"),
		conditional("MPL-2.0", "Proprietary", "MPL-2.0", "MPL-covered files stay under MPL"),
		incompatible("GPL-2.0-only", "Proprietary", "GPL requires the combined work to be released under GPL"),
		incompatible("GPL-3.0-only", "Proprietary", "GPL requires the combined work to be released under GPL"),
		incompatible("AGPL-3.0-only", "Proprietary", "AGPL requires the combined work to be released under AGPL"),
	)

	return edges
}

type obligationAt struct {
	id    string
	scope graph.Scope
}

func referenceAssignments() ([]ObligationLink, []RightLink) {
	var (
		attribution   = obligationAt{"ATTRIBUTION", graph.ScopeDistribution}
		includeText   = obligationAt{"INCLUDE_LICENSE", graph.ScopeDistribution}
		includeNotice = obligationAt{"INCLUDE_NOTICE", graph.ScopeDistribution}
		stateChanges  = obligationAt{"STATE_CHANGES", graph.ScopeFileLevel}
		fileSource    = obligationAt{"SOURCE_DISCLOSURE", graph.ScopeFileLevel}
		fileSame      = obligationAt{"SAME_LICENSE", graph.ScopeFileLevel}
		libSource     = obligationAt{"SOURCE_DISCLOSURE", graph.ScopeDistribution}
		relinking     = obligationAt{"LIBRARY_RELINKING", graph.ScopeDistribution}
		workSource    = obligationAt{"SOURCE_DISCLOSURE", graph.ScopeDerivativeWork}
		workSame      = obligationAt{"SAME_LICENSE", graph.ScopeDerivativeWork}
		networkSource = obligationAt{"NETWORK_DISCLOSURE", graph.ScopeNetworkUse}
	)

	basicRights := []string{"COMMERCIAL_USE", "MODIFICATION", "DISTRIBUTION", "PRIVATE_USE"}
	withPatent := append(append([]string{}, basicRights...), "PATENT_GRANT")
	withSublicense := append(append([]string{}, basicRights...), "SUBLICENSING")

	permissive := []obligationAt{attribution, includeText}
	lgpl := []obligationAt{attribution, includeText, stateChanges, libSource, fileSame, relinking}
	fileCopyleft := []obligationAt{includeText, fileSource, fileSame}
	gpl := []obligationAt{attribution, includeText, stateChanges, workSource, workSame}
	agpl := append(append([]obligationAt{}, gpl...), networkSource)

	profiles := []struct {
		licenses    []string
		obligations []obligationAt
		rights      []string
	}{
		{[]string{"MIT", "BSD-2-Clause", "BSD-3-Clause", "ISC"}, permissive, withSublicense},
		{[]string{"Apache-2.0"}, []obligationAt{attribution, includeText, includeNotice, stateChanges}, withPatent},
		{[]string{"Zlib"}, []obligationAt{includeText, stateChanges}, basicRights},
		{[]string{"BSL-1.0"}, []obligationAt{{"INCLUDE_LICENSE", graph.ScopeFileLevel}}, withSublicense},
		{[]string{"0BSD", "Unlicense", "CC0-1.0"}, nil, withSublicense},
		{[]string{"LGPL-2.1-only", "LGPL-2.1-or-later", "LGPL-2.1"}, lgpl, basicRights},
		{[]string{"LGPL-3.0-only", "LGPL-3.0-or-later"}, lgpl, withPatent},
		{[]string{"MPL-2.0", "EPL-2.0", "CDDL-1.0"}, fileCopyleft, withPatent},
		{[]string{"GPL-2.0-only", "GPL-2.0-or-later", "GPL-2.0"}, gpl, basicRights},
		{[]string{"GPL-3.0-only", "GPL-3.0-or-later", "GPL-3.0"}, gpl, withPatent},
		{[]string{"AGPL-3.0-only", "AGPL-3.0-or-later"}, agpl, withPatent},
		{[]string{"Proprietary"}, nil, []string{"PRIVATE_USE"}},
	}

	var obligations []ObligationLink
	var rights []RightLink
	for _, p := range profiles {
		for _, licenseID := range p.licenses {
			for _, o := range p.obligations {
				obligations = append(obligations, ObligationLink{LicenseID: licenseID, ObligationID: o.id, Scope: o.scope})
			}
			for _, r := range p.rights {
				rights = append(rights, RightLink{LicenseID: licenseID, RightID: r})
			}
		}
	}
	return obligations, rights
}
