package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"licensegraph/internal/graph"
)

func loadReference(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := Load(zap.NewNop())
	require.NoError(t, err)
	return g
}

func TestLoad_ReferenceCatalogIsValid(t *testing.T) {
	g := loadReference(t)

	assert.True(t, g.Frozen())
	s := g.GetStatistics()
	assert.GreaterOrEqual(t, s.TotalLicenses, 20)
	assert.GreaterOrEqual(t, s.TotalObligations, 5)
	assert.GreaterOrEqual(t, s.TotalRights, 3)
	assert.GreaterOrEqual(t, s.TotalEdges, 50)
	assert.Equal(t, 3, s.DeprecatedLicenses)
	assert.Contains(t, s.Families, "GPL")
}

func TestLoad_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	_, err := Load(zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("license graph built").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(len(Reference().Licenses)), entries[0].ContextMap()["licenses"])
}

func TestLoad_NilLogger(t *testing.T) {
	g, err := Load(nil)
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestReference_FreshValue(t *testing.T) {
	a := Reference()
	a.Licenses = a.Licenses[:1]
	b := Reference()
	assert.Greater(t, len(b.Licenses), 1)
}

func TestBuild_NilCatalog(t *testing.T) {
	_, err := Build(nil, nil)
	assert.Error(t, err)
}

func TestBuild_ReportsEveryDefect(t *testing.T) {
	c := &Catalog{
		Licenses: []graph.LicenseNode{
			{ID: "MIT", Category: graph.CategoryPermissive},
			{ID: "mit", Category: graph.CategoryPermissive},
		},
		Obligations: []graph.Obligation{{ID: "ATTRIBUTION"}},
		Edges: []graph.CompatibilityEdge{
			{SourceID: "MIT", TargetID: "GHOST-1.0", Level: graph.LevelFull, Direction: graph.DirectionBidirectional},
		},
		LicenseObligations: []ObligationLink{
			{LicenseID: "MIT", ObligationID: "NOT_AN_OBLIGATION", Scope: graph.ScopeDistribution},
		},
		LicenseRights: []RightLink{{LicenseID: "MIT", RightID: "FLY"}},
	}

	core, logs := observer.New(zap.ErrorLevel)
	g, err := Build(c, zap.New(core))
	require.Error(t, err)
	assert.Nil(t, g)

	assert.Len(t, multierr.Errors(unwrapOnce(err)), 4)
	assert.ErrorIs(t, err, graph.ErrDuplicateLicense)
	assert.ErrorIs(t, err, graph.ErrUnknownLicense)
	assert.ErrorIs(t, err, graph.ErrUnknownObligation)
	assert.ErrorIs(t, err, graph.ErrUnknownRight)
	assert.Equal(t, 1, logs.FilterMessage("catalog validation failed").Len())
}

func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return err
}

// --- Behaviour of the reference data ---

func TestReference_IdenticalAlwaysFull(t *testing.T) {
	g := loadReference(t)
	for _, id := range g.LicenseIDs() {
		r := g.CheckCompatibility(id, id)
		assert.Equal(t, graph.LevelFull, r.Level, id)
		assert.True(t, r.Compatible, id)
	}
}

func TestReference_PermissivePairsFull(t *testing.T) {
	g := loadReference(t)
	permissive := g.GetLicensesByCategory(graph.CategoryPermissive)
	for _, a := range permissive {
		for _, b := range permissive {
			assert.Equal(t, graph.LevelFull, g.CheckCompatibility(a.ID, b.ID).Level, "%s + %s", a.ID, b.ID)
		}
	}
}

func TestReference_PublicDomainPairs(t *testing.T) {
	g := loadReference(t)
	for _, pair := range [][2]string{
		{"ISC", "CC0-1.0"},
		{"Unlicense", "Apache-2.0"},
		{"Unlicense", "CC0-1.0"},
	} {
		r := g.CheckCompatibility(pair[0], pair[1])
		assert.Equal(t, graph.LevelFull, r.Level, "%s + %s", pair[0], pair[1])
		assert.False(t, r.RequiresReview, "%s + %s", pair[0], pair[1])
	}

	r := g.CheckCompatibility("CC0-1.0", "GPL-3.0-only")
	assert.Equal(t, graph.LevelConditional, r.Level)
	assert.Equal(t, "GPL-3.0-ONLY", r.DominantLicense)
	assert.False(t, r.RequiresReview)
}

func TestReference_UnrestrictedIntoProprietary(t *testing.T) {
	g := loadReference(t)
	ids := g.GetLicensesByCategory(graph.CategoryPermissive)
	ids = append(ids, g.GetLicensesByCategory(graph.CategoryPublicDomain)...)
	for _, l := range ids {
		r := g.CheckCompatibility(l.ID, "Proprietary")
		assert.Equal(t, graph.LevelOneWay, r.Level, l.ID)
		assert.Equal(t, graph.BasisEdge, r.Basis, l.ID)
	}
}

func TestReference_GPL2OnlyVersusGPL3Only(t *testing.T) {
	g := loadReference(t)
	r := g.CheckCompatibility("GPL-2.0-ONLY", "GPL-3.0-ONLY")
	assert.False(t, r.Compatible)
	assert.Equal(t, graph.LevelIncompatible, r.Level)
}

func TestReference_MITIntoGPL3(t *testing.T) {
	g := loadReference(t)
	r := g.CheckCompatibility("MIT", "GPL-3.0-ONLY")
	assert.Equal(t, graph.LevelConditional, r.Level)
	assert.True(t, r.Compatible)
	assert.Equal(t, "GPL-3.0-ONLY", r.DominantLicense)
}

func TestReference_ApacheVersusGPL2Only(t *testing.T) {
	g := loadReference(t)
	r := g.CheckCompatibility("apache-2.0", "gpl-2.0-only")
	assert.Equal(t, graph.LevelIncompatible, r.Level)
	assert.NotEmpty(t, r.Notes)
}

func TestReference_OrLaterUpgrade(t *testing.T) {
	g := loadReference(t)
	r := g.CheckCompatibility("GPL-2.0-or-later", "GPL-3.0-only")
	assert.Equal(t, graph.LevelOneWay, r.Level)
	assert.True(t, r.Compatible)
}

func TestReference_AggregateObligations(t *testing.T) {
	g := loadReference(t)
	s := g.AggregateObligations([]string{"MIT", "APACHE-2.0", "GPL-3.0-ONLY"})

	attr, ok := s.Find("ATTRIBUTION")
	require.True(t, ok)
	assert.Len(t, attr.Sources, 3)

	src, ok := s.Find("SOURCE_DISCLOSURE")
	require.True(t, ok)
	assert.Equal(t, []string{"GPL-3.0-ONLY"}, src.Sources)
	assert.Equal(t, graph.ScopeDerivativeWork, src.Scope)
}

func TestReference_Paths(t *testing.T) {
	g := loadReference(t)

	p := g.FindCompatibilityPath("MIT", "MIT")
	require.NotNil(t, p)
	assert.Equal(t, []string{"MIT"}, p.Licenses)
	assert.Equal(t, graph.LevelFull, p.Level)

	p = g.FindCompatibilityPath("LGPL-2.1-OR-LATER", "GPL-3.0-ONLY")
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Hops())
	assert.Equal(t, graph.LevelOneWay, p.Level)

	// NOASSERTION has no edges at all
	assert.Nil(t, g.FindCompatibilityPath("MIT", "NOASSERTION"))
}

func TestReference_LicenseDetails(t *testing.T) {
	g := loadReference(t)
	d := g.GetLicenseDetails("AGPL-3.0-ONLY")
	require.NotNil(t, d)
	assert.Equal(t, graph.CopyleftNetwork, d.License.CopyleftStrength)

	var network bool
	for _, o := range d.Obligations {
		if o.Obligation.ID == "NETWORK_DISCLOSURE" {
			network = true
			assert.Equal(t, graph.ScopeNetworkUse, o.Scope)
		}
	}
	assert.True(t, network)
	assert.NotContains(t, d.CompatibleWith, "PROPRIETARY")
	assert.Contains(t, d.DirectlyRelatedTo, "PROPRIETARY")
}
