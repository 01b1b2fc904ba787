package graph

// CompatibilityPath is a chain of direct edges from one license to another.
// Level is the weakest level among the traversed edges.
type CompatibilityPath struct {
	Licenses   []string            `json:"licenses"`
	Edges      []CompatibilityEdge `json:"edges"`
	Level      CompatibilityLevel  `json:"level"`
	Compatible bool                `json:"compatible"`
}

// Hops is the number of edges on the path
func (p *CompatibilityPath) Hops() int {
	return len(p.Edges)
}

// FindCompatibilityPath runs a breadth-first search over the compatibility
// edges from idA to idB. Only authored edges are followed, never the inference
// rules of CheckCompatibility, and INCOMPATIBLE edges are not traversable.
// The shortest path wins; among equally short paths the one reached first in
// id order is returned. Returns nil when no path exists.
func (g *Graph) FindCompatibilityPath(idA, idB string) *CompatibilityPath {
	start, goal := NormalizeID(idA), NormalizeID(idB)
	if start == goal {
		return &CompatibilityPath{
			Licenses:   []string{start},
			Edges:      []CompatibilityEdge{},
			Level:      LevelFull,
			Compatible: true,
		}
	}
	if _, ok := g.licenses[start]; !ok {
		return nil
	}
	if _, ok := g.licenses[goal]; !ok {
		return nil
	}

	prev := map[string]string{start: ""}
	queue := []string{start}
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.outAdj[current] {
			if _, seen := prev[next]; seen {
				continue
			}
			if g.lookup[edgeKey{current, next}].Level == LevelIncompatible {
				continue
			}
			prev[next] = current
			if next == goal {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}
	if !found {
		return nil
	}

	var licenses []string
	for id := goal; id != ""; id = prev[id] {
		licenses = append(licenses, id)
	}
	for i, j := 0, len(licenses)-1; i < j; i, j = i+1, j-1 {
		licenses[i], licenses[j] = licenses[j], licenses[i]
	}

	path := &CompatibilityPath{
		Licenses: licenses,
		Edges:    make([]CompatibilityEdge, 0, len(licenses)-1),
		Level:    LevelFull,
	}
	for i := 0; i+1 < len(licenses); i++ {
		e := g.lookup[edgeKey{licenses[i], licenses[i+1]}]
		path.Edges = append(path.Edges, *e)
		path.Level = Weaker(path.Level, e.Level)
	}
	path.Compatible = path.Level.Compatible()
	return path
}
