// File: methods_adjacent.go
// Role: Adjacency queries used by traversals: Neighbors/NeighborIDs plus the
//       edge accessors Endpoints/EdgeWeight/Opposite.
// Determinism:
//   - Neighbors() returns edges in creation order; NeighborIDs() is sorted.
// Concurrency:
//   - Read locks only, acquired muVert → muEdgeAdj like mutators.

package core

import "sort"

// Neighbors returns the edges that can be walked out of id:
// outgoing directed edges plus every incident undirected edge
// (self-loops included once).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.adjacencyList[id] {
		for eid := range set {
			e, ok := g.edges[eid]
			if !ok {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable over one edge from id,
// sorted lexicographically.
// Complexity: O(d + k log k).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := Opposite(e, id)
		if _, dup := seen[nb]; dup {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Endpoints returns the stored (From, To) pair of e.
func (g *Graph) Endpoints(e *Edge) (string, string) {
	return e.From, e.To
}

// EdgeWeight returns e.Weight for weighted graphs and DefaultWeight otherwise.
func (g *Graph) EdgeWeight(e *Edge) float64 {
	if !g.Weighted() {
		return DefaultWeight
	}

	return e.Weight
}

// Opposite returns the endpoint of e that is not v. For self-loops it returns v.
func Opposite(e *Edge, v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}
