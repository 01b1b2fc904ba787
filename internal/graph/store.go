package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrFrozen is returned by every mutator once Freeze has been called
	ErrFrozen = errors.New("license graph is frozen")
	// ErrDuplicateLicense means a license, obligation or right id was inserted twice
	ErrDuplicateLicense = errors.New("duplicate id")
	// ErrUnknownLicense means a relation referenced a license that was never added
	ErrUnknownLicense = errors.New("unknown license")
	// ErrUnknownObligation means an assignment referenced an obligation that was never added
	ErrUnknownObligation = errors.New("unknown obligation")
	// ErrUnknownRight means an assignment referenced a right that was never added
	ErrUnknownRight = errors.New("unknown right")
	// ErrInvalidEdge covers malformed compatibility edges
	ErrInvalidEdge = errors.New("invalid compatibility edge")
)

// edgeKey addresses an edge from the perspective of a lookup from Source toward Target
type edgeKey struct {
	source, target string
}

type obligationRef struct {
	obligationID string
	scope        Scope
}

// Graph holds license nodes, compatibility edges and the obligation/right
// catalogs with their assignments. Readers never mutate it, so a frozen Graph
// is safe for any number of concurrent callers. The mutators exist to build
// the graph and must not run concurrently with readers.
type Graph struct {
	licenses   map[string]*LicenseNode
	byCategory map[Category][]string
	byFamily   map[string][]string // normalized family -> license ids

	obligations map[string]*Obligation
	rights      map[string]*Right

	edges  []*CompatibilityEdge          // as authored
	lookup map[edgeKey]*CompatibilityEdge // forward index plus reverse entries for bidirectional edges
	outAdj map[string][]string            // sorted neighbors reachable by a direct lookup

	licenseObligations map[string][]obligationRef
	licenseRights      map[string][]string

	frozen bool
}

// New creates an empty, mutable graph
func New() *Graph {
	return &Graph{
		licenses:           make(map[string]*LicenseNode),
		byCategory:         make(map[Category][]string),
		byFamily:           make(map[string][]string),
		obligations:        make(map[string]*Obligation),
		rights:             make(map[string]*Right),
		lookup:             make(map[edgeKey]*CompatibilityEdge),
		outAdj:             make(map[string][]string),
		licenseObligations: make(map[string][]obligationRef),
		licenseRights:      make(map[string][]string),
	}
}

// Freeze makes the graph read-only. It cannot be undone.
func (g *Graph) Freeze() {
	g.frozen = true
}

// Frozen reports whether Freeze has been called
func (g *Graph) Frozen() bool {
	return g.frozen
}

// AddLicense inserts a license node. The id is canonicalized before storage.
func (g *Graph) AddLicense(l LicenseNode) error {
	if g.frozen {
		return ErrFrozen
	}
	l.ID = NormalizeID(l.ID)
	if l.ID == "" {
		return fmt.Errorf("license with empty id: %w", ErrUnknownLicense)
	}
	if _, exists := g.licenses[l.ID]; exists {
		return fmt.Errorf("license %s: %w", l.ID, ErrDuplicateLicense)
	}
	if !l.Category.Valid() {
		return fmt.Errorf("license %s has invalid category %q", l.ID, l.Category)
	}
	if l.CopyleftStrength == "" {
		l.CopyleftStrength = CopyleftNone
	}
	if !l.CopyleftStrength.Valid() {
		return fmt.Errorf("license %s has invalid copyleft strength %q", l.ID, l.CopyleftStrength)
	}

	node := l
	g.licenses[l.ID] = &node
	g.byCategory[l.Category] = insertSorted(g.byCategory[l.Category], l.ID)
	if fam := normalizeFamily(l.Family); fam != "" {
		g.byFamily[fam] = insertSorted(g.byFamily[fam], l.ID)
	}
	return nil
}

// AddObligation inserts an obligation into the catalog
func (g *Graph) AddObligation(o Obligation) error {
	if g.frozen {
		return ErrFrozen
	}
	o.ID = NormalizeID(o.ID)
	if o.ID == "" {
		return fmt.Errorf("obligation with empty id: %w", ErrUnknownObligation)
	}
	if _, exists := g.obligations[o.ID]; exists {
		return fmt.Errorf("obligation %s: %w", o.ID, ErrDuplicateLicense)
	}
	if o.Effort == "" {
		o.Effort = EffortLow
	}
	ob := o
	g.obligations[o.ID] = &ob
	return nil
}

// AddRight inserts a right into the catalog
func (g *Graph) AddRight(r Right) error {
	if g.frozen {
		return ErrFrozen
	}
	r.ID = NormalizeID(r.ID)
	if r.ID == "" {
		return fmt.Errorf("right with empty id: %w", ErrUnknownRight)
	}
	if _, exists := g.rights[r.ID]; exists {
		return fmt.Errorf("right %s: %w", r.ID, ErrDuplicateLicense)
	}
	rt := r
	g.rights[r.ID] = &rt
	return nil
}

// AddEdge inserts a compatibility edge between two licenses that already exist.
// Bidirectional edges are indexed from both endpoints; one-way edges only from
// their source, so a reverse lookup needs its own independently authored edge.
func (g *Graph) AddEdge(e CompatibilityEdge) error {
	if g.frozen {
		return ErrFrozen
	}
	e.SourceID = NormalizeID(e.SourceID)
	e.TargetID = NormalizeID(e.TargetID)
	e.DominantLicenseID = NormalizeID(e.DominantLicenseID)

	if _, ok := g.licenses[e.SourceID]; !ok {
		return fmt.Errorf("edge source %s: %w", e.SourceID, ErrUnknownLicense)
	}
	if _, ok := g.licenses[e.TargetID]; !ok {
		return fmt.Errorf("edge target %s: %w", e.TargetID, ErrUnknownLicense)
	}
	if e.SourceID == e.TargetID {
		return fmt.Errorf("self edge on %s: %w", e.SourceID, ErrInvalidEdge)
	}
	if !e.Level.Valid() {
		return fmt.Errorf("edge %s->%s level %q: %w", e.SourceID, e.TargetID, e.Level, ErrInvalidEdge)
	}
	if !e.Direction.Valid() {
		return fmt.Errorf("edge %s->%s direction %q: %w", e.SourceID, e.TargetID, e.Direction, ErrInvalidEdge)
	}
	if e.DominantLicenseID != "" && e.DominantLicenseID != e.SourceID && e.DominantLicenseID != e.TargetID {
		return fmt.Errorf("edge %s->%s dominant license %s is not an endpoint: %w",
			e.SourceID, e.TargetID, e.DominantLicenseID, ErrInvalidEdge)
	}

	forward := edgeKey{e.SourceID, e.TargetID}
	reverse := edgeKey{e.TargetID, e.SourceID}
	if _, exists := g.lookup[forward]; exists {
		return fmt.Errorf("edge %s->%s already defined: %w", e.SourceID, e.TargetID, ErrInvalidEdge)
	}
	if e.Direction == DirectionBidirectional {
		if _, exists := g.lookup[reverse]; exists {
			return fmt.Errorf("edge %s->%s collides with an existing reverse edge: %w",
				e.SourceID, e.TargetID, ErrInvalidEdge)
		}
	}
	if e.ID == "" {
		e.ID = EdgeID(e.SourceID, e.TargetID)
	}

	edge := e
	g.edges = append(g.edges, &edge)
	g.lookup[forward] = &edge
	g.outAdj[e.SourceID] = insertSorted(g.outAdj[e.SourceID], e.TargetID)
	if e.Direction == DirectionBidirectional {
		g.lookup[reverse] = &edge
		g.outAdj[e.TargetID] = insertSorted(g.outAdj[e.TargetID], e.SourceID)
	}
	return nil
}

// AssignObligation attaches an obligation to a license at the given scope
func (g *Graph) AssignObligation(licenseID, obligationID string, scope Scope) error {
	if g.frozen {
		return ErrFrozen
	}
	licenseID = NormalizeID(licenseID)
	obligationID = NormalizeID(obligationID)
	if _, ok := g.licenses[licenseID]; !ok {
		return fmt.Errorf("obligation assignment %s: %w", licenseID, ErrUnknownLicense)
	}
	if _, ok := g.obligations[obligationID]; !ok {
		return fmt.Errorf("license %s obligation %s: %w", licenseID, obligationID, ErrUnknownObligation)
	}
	if !scope.Valid() {
		return fmt.Errorf("license %s obligation %s has invalid scope %q", licenseID, obligationID, scope)
	}
	for _, ref := range g.licenseObligations[licenseID] {
		if ref.obligationID == obligationID {
			return fmt.Errorf("license %s obligation %s: %w", licenseID, obligationID, ErrDuplicateLicense)
		}
	}
	g.licenseObligations[licenseID] = append(g.licenseObligations[licenseID], obligationRef{obligationID, scope})
	return nil
}

// AssignRight attaches a right to a license
func (g *Graph) AssignRight(licenseID, rightID string) error {
	if g.frozen {
		return ErrFrozen
	}
	licenseID = NormalizeID(licenseID)
	rightID = NormalizeID(rightID)
	if _, ok := g.licenses[licenseID]; !ok {
		return fmt.Errorf("right assignment %s: %w", licenseID, ErrUnknownLicense)
	}
	if _, ok := g.rights[rightID]; !ok {
		return fmt.Errorf("license %s right %s: %w", licenseID, rightID, ErrUnknownRight)
	}
	for _, existing := range g.licenseRights[licenseID] {
		if existing == rightID {
			return fmt.Errorf("license %s right %s: %w", licenseID, rightID, ErrDuplicateLicense)
		}
	}
	g.licenseRights[licenseID] = append(g.licenseRights[licenseID], rightID)
	return nil
}

// GetLicense looks a license up by id, ignoring case and surrounding space
func (g *Graph) GetLicense(id string) (LicenseNode, bool) {
	l, ok := g.licenses[NormalizeID(id)]
	if !ok {
		return LicenseNode{}, false
	}
	return *l, true
}

// GetLicensesByCategory returns the licenses in a category, ordered by id
func (g *Graph) GetLicensesByCategory(cat Category) []LicenseNode {
	return g.collect(g.byCategory[cat])
}

// GetLicensesByFamily returns the licenses of a family (case-insensitive), ordered by id
func (g *Graph) GetLicensesByFamily(family string) []LicenseNode {
	return g.collect(g.byFamily[normalizeFamily(family)])
}

// SearchLicenses matches query as a case-insensitive substring of the id or display name
func (g *Graph) SearchLicenses(query string) []LicenseNode {
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []string
	for _, id := range g.LicenseIDs() {
		l := g.licenses[id]
		if strings.Contains(strings.ToLower(l.ID), q) || strings.Contains(strings.ToLower(l.DisplayName), q) {
			matches = append(matches, id)
		}
	}
	return g.collect(matches)
}

// Licenses returns every license ordered by id
func (g *Graph) Licenses() []LicenseNode {
	return g.collect(g.LicenseIDs())
}

// LicenseIDs returns a sorted list of all license IDs (for deterministic output)
func (g *Graph) LicenseIDs() []string {
	ids := make([]string, 0, len(g.licenses))
	for id := range g.licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns the compatibility edges in the order they were authored
func (g *Graph) Edges() []CompatibilityEdge {
	out := make([]CompatibilityEdge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}
	return out
}

// Edge returns the edge a lookup from sourceID toward targetID resolves to
func (g *Graph) Edge(sourceID, targetID string) (CompatibilityEdge, bool) {
	e, ok := g.lookup[edgeKey{NormalizeID(sourceID), NormalizeID(targetID)}]
	if !ok {
		return CompatibilityEdge{}, false
	}
	return *e, true
}

// Neighbors returns the licenses reachable from id through one direct edge, sorted
func (g *Graph) Neighbors(id string) []string {
	adj := g.outAdj[NormalizeID(id)]
	out := make([]string, len(adj))
	copy(out, adj)
	return out
}

// Obligation looks up a catalog obligation by id
func (g *Graph) Obligation(id string) (Obligation, bool) {
	o, ok := g.obligations[NormalizeID(id)]
	if !ok {
		return Obligation{}, false
	}
	return *o, true
}

// Obligations returns the obligation catalog ordered by id
func (g *Graph) Obligations() []Obligation {
	out := make([]Obligation, 0, len(g.obligations))
	for _, o := range g.obligations {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Right looks up a catalog right by id
func (g *Graph) Right(id string) (Right, bool) {
	r, ok := g.rights[NormalizeID(id)]
	if !ok {
		return Right{}, false
	}
	return *r, true
}

// Rights returns the right catalog ordered by id
func (g *Graph) Rights() []Right {
	out := make([]Right, 0, len(g.rights))
	for _, r := range g.rights {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Graph) collect(ids []string) []LicenseNode {
	out := make([]LicenseNode, 0, len(ids))
	for _, id := range ids {
		if l, ok := g.licenses[id]; ok {
			out = append(out, *l)
		}
	}
	return out
}

func normalizeFamily(family string) string {
	return strings.ToUpper(strings.TrimSpace(family))
}

func insertSorted(ids []string, id string) []string {
	i := sort.SearchStrings(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
