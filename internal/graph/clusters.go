package graph

import "sort"

// unionFind groups license ids with path compression and union by rank
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id string) string {
	parent, ok := uf.parent[id]
	if !ok {
		return id
	}
	if parent != id {
		root := uf.find(parent)
		uf.parent[id] = root
		return root
	}
	return id
}

func (uf *unionFind) union(a, b string) {
	rootA, rootB := uf.find(a), uf.find(b)
	if rootA == rootB {
		return
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
}

// groups returns each component sorted internally, and the components
// ordered by their first member
func (uf *unionFind) groups() [][]string {
	byRoot := make(map[string][]string)
	for id := range uf.parent {
		root := uf.find(id)
		byRoot[root] = append(byRoot[root], id)
	}
	out := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// CompatibilityClusters partitions the licenses into groups connected by
// edges that are not INCOMPATIBLE. A license with no such edge forms its own
// cluster.
func (g *Graph) CompatibilityClusters() [][]string {
	uf := newUnionFind(g.LicenseIDs())
	for _, e := range g.edges {
		if e.Level == LevelIncompatible {
			continue
		}
		uf.union(e.SourceID, e.TargetID)
	}
	return uf.groups()
}
