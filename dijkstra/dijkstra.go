package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/traverse"
)

// Tree is a settled shortest-path tree rooted at Source.
type Tree struct {
	// Source is the root vertex.
	Source string

	// Order lists settled vertices by non-decreasing distance.
	Order []string

	cf *traverse.ClosestFirst[string, *core.Edge]
}

// Distance returns the shortest distance to v; ok is false if v was not settled.
func (t *Tree) Distance(v string) (float64, bool) {
	return t.cf.Priority(v)
}

// EdgesTo returns the edges of a shortest path Source → v, source side first.
// Returns ErrUnreachable if v was not settled.
func (t *Tree) EdgesTo(v string) ([]*core.Edge, error) {
	path, ok := t.cf.PathTo(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, v)
	}

	return path, nil
}

// PathTo returns the vertex sequence of a shortest path Source → v, inclusive.
// Returns ErrUnreachable if v was not settled.
func (t *Tree) PathTo(v string) ([]string, error) {
	edges, err := t.EdgesTo(v)
	if err != nil {
		return nil, err
	}
	path := make([]string, 0, len(edges)+1)
	path = append(path, t.Source)
	for _, e := range edges {
		path = append(path, core.Opposite(e, path[len(path)-1]))
	}

	return path, nil
}

// Edges returns every tree edge in settling order.
func (t *Tree) Edges() []*core.Edge {
	return t.cf.TreeEdges()
}

// ShortestPaths settles every vertex reachable from Options.Source and returns
// the resulting shortest-path tree.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Unweighted graphs are accepted: every edge weighs core.DefaultWeight, so
// distances count hops.
//
// Complexity:
//
//   - Time:  O(E + V log V) with heap.KindFibonacci, O(E log V) with heap.KindBinary.
//   - Space: O(V).
func ShortestPaths(g *core.Graph, opts ...Option) (*Tree, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 3) Closest-first with Sum is Dijkstra; the threshold becomes an edge filter
	//    and MaxDistance the radius.
	topts := []traverse.Option[string, *core.Edge]{
		traverse.WithStart[string, *core.Edge](cfg.Source),
		traverse.WithHeap[string, *core.Edge](cfg.Heap),
		traverse.WithLogger[string, *core.Edge](cfg.Logger),
	}
	if !math.IsInf(cfg.MaxDistance, 1) {
		topts = append(topts, traverse.WithRadius[string, *core.Edge](cfg.MaxDistance))
	}
	if !math.IsInf(cfg.InfEdgeThreshold, 1) {
		threshold := cfg.InfEdgeThreshold
		topts = append(topts, traverse.WithEdgeFilter(func(_ string, e *core.Edge) bool {
			return g.EdgeWeight(e) < threshold
		}))
	}
	cf, err := traverse.NewClosestFirst(g, traverse.Sum, topts...)
	if err != nil {
		return nil, wrap(err)
	}

	// 4) Settle everything reachable
	tree := &Tree{Source: cfg.Source, cf: cf}
	for cf.Next() {
		tree.Order = append(tree.Order, cf.Vertex())
	}
	if err = cf.Err(); err != nil {
		return nil, wrap(err)
	}

	return tree, nil
}

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Validation order and options are those of ShortestPaths.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	tree, err := ShortestPaths(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		d, ok := tree.Distance(v)
		if !ok {
			d = math.Inf(1)
		}
		dist[v] = d
		if prev != nil {
			p, _ := tree.cf.Parent(v)
			prev[v] = p
		}
	}

	return dist, prev, nil
}

// wrap maps traversal errors onto this package's sentinels.
func wrap(err error) error {
	if errors.Is(err, traverse.ErrNegativeWeight) {
		return fmt.Errorf("%w: %w", ErrNegativeWeight, err)
	}

	return fmt.Errorf("dijkstra: %w", err)
}
