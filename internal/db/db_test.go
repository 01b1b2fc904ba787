package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory database with the snapshot schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.InitSchema())
	return d
}

func strPtr(s string) *string { return &s }

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Licenses: []License{
			{ID: "MIT", DisplayName: "MIT License", Category: "PERMISSIVE", CopyleftStrength: "NONE", Family: strPtr("MIT")},
			{ID: "GPL-3.0-ONLY", DisplayName: "GPL v3 only", Category: "STRONG_COPYLEFT", CopyleftStrength: "STRONG", Family: strPtr("GPL")},
			{ID: "GPL-3.0", DisplayName: "GPL v3", Category: "STRONG_COPYLEFT", CopyleftStrength: "STRONG", Deprecated: true},
		},
		Obligations: []Obligation{
			{ID: "ATTRIBUTION", Name: "Attribution", Effort: "LOW"},
			{ID: "SOURCE_DISCLOSURE", Name: "Disclose source", Description: "ship source", Effort: "HIGH"},
		},
		Rights: []Right{{ID: "DISTRIBUTION", Name: "Distribution"}},
		Edges: []Edge{
			{ID: "e2", Position: 1, SourceID: "GPL-3.0", TargetID: "GPL-3.0-ONLY", Level: "FULL", Direction: "BIDIRECTIONAL"},
			{ID: "e1", Position: 0, SourceID: "MIT", TargetID: "GPL-3.0-ONLY", Level: "CONDITIONAL", Direction: "BIDIRECTIONAL",
				DominantLicenseID: strPtr("GPL-3.0-ONLY"), Notes: strPtr("GPL governs")},
		},
		LicenseObligations: []LicenseObligation{
			{LicenseID: "MIT", ObligationID: "ATTRIBUTION", Scope: "DISTRIBUTION"},
			{LicenseID: "GPL-3.0-ONLY", ObligationID: "SOURCE_DISCLOSURE", Scope: "DERIVATIVE_WORK"},
		},
		LicenseRights: []LicenseRight{{LicenseID: "MIT", RightID: "DISTRIBUTION"}},
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	d := setupTestDB(t)
	assert.NoError(t, d.InitSchema())
}

func TestReadSnapshot_Empty(t *testing.T) {
	d := setupTestDB(t)
	s, err := d.ReadSnapshot()
	require.NoError(t, err)
	assert.Empty(t, s.Licenses)
	assert.Empty(t, s.Edges)
	assert.Zero(t, s.WrittenAt)
}

func TestWriteSnapshot_RoundTrip(t *testing.T) {
	d := setupTestDB(t)
	in := sampleSnapshot()
	require.NoError(t, d.WriteSnapshot(in))
	assert.NotZero(t, in.WrittenAt)

	out, err := d.ReadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, in.WrittenAt, out.WrittenAt)

	// licenses come back ordered by id
	require.Len(t, out.Licenses, 3)
	assert.Equal(t, "GPL-3.0", out.Licenses[0].ID)
	assert.True(t, out.Licenses[0].Deprecated)
	assert.Nil(t, out.Licenses[0].Family)
	assert.Equal(t, "MIT", out.Licenses[2].ID)
	require.NotNil(t, out.Licenses[2].Family)
	assert.Equal(t, "MIT", *out.Licenses[2].Family)

	// edges come back in authored order
	require.Len(t, out.Edges, 2)
	assert.Equal(t, "e1", out.Edges[0].ID)
	assert.Equal(t, "GPL-3.0-ONLY", *out.Edges[0].DominantLicenseID)
	assert.Equal(t, "GPL governs", *out.Edges[0].Notes)
	assert.Nil(t, out.Edges[1].DominantLicenseID)

	assert.ElementsMatch(t, in.Obligations, out.Obligations)
	assert.Equal(t, in.Rights, out.Rights)
	assert.ElementsMatch(t, in.LicenseObligations, out.LicenseObligations)
	assert.Equal(t, in.LicenseRights, out.LicenseRights)
}

func TestWriteSnapshot_Replaces(t *testing.T) {
	d := setupTestDB(t)
	require.NoError(t, d.WriteSnapshot(sampleSnapshot()))

	smaller := &Snapshot{Licenses: []License{{ID: "ISC", DisplayName: "ISC License", Category: "PERMISSIVE", CopyleftStrength: "NONE"}}}
	require.NoError(t, d.WriteSnapshot(smaller))

	out, err := d.ReadSnapshot()
	require.NoError(t, err)
	require.Len(t, out.Licenses, 1)
	assert.Equal(t, "ISC", out.Licenses[0].ID)
	assert.Empty(t, out.Edges)
	assert.Empty(t, out.LicenseObligations)
}

func TestWriteSnapshot_ForeignKeyViolationRollsBack(t *testing.T) {
	d := setupTestDB(t)
	require.NoError(t, d.WriteSnapshot(sampleSnapshot()))

	bad := sampleSnapshot()
	bad.LicenseRights = append(bad.LicenseRights, LicenseRight{LicenseID: "MIT", RightID: "NOPE"})
	err := d.WriteSnapshot(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigning right NOPE to MIT")

	// the earlier snapshot survives
	out, err := d.ReadSnapshot()
	require.NoError(t, err)
	assert.Len(t, out.Licenses, 3)
	assert.Len(t, out.LicenseRights, 1)
}

func TestOpenDB_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	d, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, d.InitSchema())
	require.NoError(t, d.WriteSnapshot(sampleSnapshot()))
	require.NoError(t, d.Close())

	d, err = OpenDB(path)
	require.NoError(t, err)
	defer d.Close()
	s, err := d.ReadSnapshot()
	require.NoError(t, err)
	assert.Len(t, s.Licenses, 3)
	assert.Equal(t, path, d.Path)
}
