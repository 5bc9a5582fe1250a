// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus feature queries. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID (numeric order of the counter).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. If opts present without mixed mode on an undirected graph ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check multi-edge constraint.
//  5. Build Edge (graph default direction, then opts) and store it.
//  6. Record adjacency from→to; mirror to→from for undirected non-loop edges.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrMixedEdgesNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 2) Per-edge overrides need mixed mode (or an already directed graph).
	if len(opts) > 0 && !g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Multi-edge existence check, honoring the mirror for undirected edges.
	if !g.allowMulti {
		if len(g.adjacencyList[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 5) Build and store the edge.
	e := &Edge{
		ID:       nextEdgeID(g),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e

	// 6) Adjacency, mirrored for undirected edges.
	addAdjacency(g, from, to, e.ID)
	if !e.Directed && from != to {
		addAdjacency(g, to, from, e.ID)
	}
	g.version.Add(1)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, eid)
	g.version.Add(1)

	return nil
}

// HasEdge reports whether at least one edge can be walked from→to.
// Undirected edges count in both directions.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge, ordered by creation (Edge.ID counter ascending).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any stored edge is directed.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// nextEdgeID generates "e1", "e2", ... without fmt.
func nextEdgeID(g *Graph) string {
	n := g.nextEdgeID.Add(1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

// edgeSeq extracts the numeric counter from an "eN" ID; foreign IDs sort last.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

// sortEdges orders edges by creation sequence, then by ID for stability.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		si, sj := edgeSeq(es[i].ID), edgeSeq(es[j].ID)
		if si != sj {
			return si < sj
		}

		return es[i].ID < es[j].ID
	})
}

// addAdjacency records eid under adjacencyList[from][to]. Caller holds muEdgeAdj.
func addAdjacency(g *Graph, from, to, eid string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	set, ok := inner[to]
	if !ok {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}

// removeAdjacency drops e from both adjacency directions. Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	drop := func(a, b string) {
		if set, ok := g.adjacencyList[a][b]; ok {
			delete(set, e.ID)
			if len(set) == 0 {
				delete(g.adjacencyList[a], b)
			}
		}
	}
	drop(e.From, e.To)
	if !e.Directed {
		drop(e.To, e.From)
	}
}
