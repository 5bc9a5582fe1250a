package traverse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/frontier/heap"
)

// ClosestFirst visits vertices in order of increasing priority, where the
// priority of a vertex is Combine(priority of predecessor, edge weight)
// minimized over every walkable edge seen so far.
//
// With Sum the priorities are shortest-path distances and the tree edges form
// a shortest-path tree; with EdgeOnly the tree edges form a minimum spanning
// tree (a forest in cross-component mode).
type ClosestFirst[V comparable, E any] struct {
	*Traversal[V, E]
	f *closestFrontier[V, E]
}

// NewClosestFirst builds a closest-first traversal over g.
//
// Steps:
//  1. Reject a nil graph; default combine to Sum.
//  2. Scan every walkable edge and reject negative weights.
//  3. Build the heap of the configured kind.
//  4. Wire the frontier into the Traversal skeleton.
//
// Returns ErrNilGraph, ErrNegativeWeight, ErrStartNotFound or heap.ErrUnknownKind.
// Complexity: O(V + E) for the scan; iteration costs O(E + V log V) with the
// Fibonacci heap and O(E log V) with the binary heap.
func NewClosestFirst[V comparable, E any](g Graph[V, E], combine Combine, opts ...Option[V, E]) (*ClosestFirst[V, E], error) {
	// 1) Validate collaborators
	if isNil(g) {
		return nil, ErrNilGraph
	}
	if combine == nil {
		combine = Sum
	}
	o := buildOptions(opts)

	// 2) Negative-weight pre-scan, before any output is produced
	vertices := g.Vertices()
	for _, v := range vertices {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("traverse: neighbors of %v: %w", v, err)
		}
		for _, e := range edges {
			if w := g.EdgeWeight(e); w < 0 || math.IsNaN(w) {
				from, to := g.Endpoints(e)
				o.Logger.Debug().Interface("from", from).Interface("to", to).Float64("weight", w).
					Msg("negative weight rejected")

				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, to, w)
			}
		}
	}

	// 3) Priority queue
	pq, err := heap.New[entry[V]](o.Heap, lessEntry[V], heap.WithCapacity(len(vertices)))
	if err != nil {
		return nil, err
	}

	// 4) Skeleton
	f := &closestFrontier[V, E]{
		g:       g,
		combine: combine,
		radius:  o.Radius,
		pq:      pq,
		records: make(map[V]*record[V, E], len(vertices)),
	}
	t, err := New[V, E](g, f, opts...)
	if err != nil {
		return nil, err
	}

	return &ClosestFirst[V, E]{Traversal: t, f: f}, nil
}

// Priority returns the final priority of a visited vertex.
// ok is false for vertices not yet produced by Next.
func (c *ClosestFirst[V, E]) Priority(v V) (float64, bool) {
	r, ok := c.f.records[v]
	if !ok || !r.frozen {
		return 0, false
	}

	return r.priority, true
}

// TreeEdge returns the edge through which a visited vertex was reached.
// ok is false for component roots and unvisited vertices.
func (c *ClosestFirst[V, E]) TreeEdge(v V) (E, bool) {
	r, ok := c.f.records[v]
	if !ok || !r.frozen || !r.hasEdge {
		var zero E

		return zero, false
	}

	return r.edge, true
}

// Parent returns the predecessor of a visited vertex in the tree.
func (c *ClosestFirst[V, E]) Parent(v V) (V, bool) {
	r, ok := c.f.records[v]
	if !ok || !r.frozen || !r.hasEdge {
		var zero V

		return zero, false
	}

	return r.from, true
}

// PathTo returns the tree edges from the component root to v, root side first.
// A root yields an empty path; an unvisited vertex yields ok == false.
func (c *ClosestFirst[V, E]) PathTo(v V) ([]E, bool) {
	r, ok := c.f.records[v]
	if !ok || !r.frozen {
		return nil, false
	}
	var rev []E
	for r.hasEdge {
		rev = append(rev, r.edge)
		r = c.f.records[r.from]
	}
	path := make([]E, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, true
}

// TreeEdges returns every tree edge in the order its vertex was visited.
func (c *ClosestFirst[V, E]) TreeEdges() []E {
	out := make([]E, len(c.f.tree))
	copy(out, c.f.tree)

	return out
}

// entry is the heap element: seq breaks priority ties by discovery order so
// both heap backends produce the same sequence.
type entry[V comparable] struct {
	priority float64
	seq      uint64
	v        V
}

func lessEntry[V comparable](a, b entry[V]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

// record is the per-vertex discovery record.
type record[V comparable, E any] struct {
	priority float64
	seq      uint64
	from     V
	edge     E
	hasEdge  bool
	peer     heap.Peer
	frozen   bool // popped: priority and edge are final
}

// closestFrontier is the heap-backed Frontier behind ClosestFirst.
type closestFrontier[V comparable, E any] struct {
	g       Graph[V, E]
	combine Combine
	radius  float64
	pq      heap.Heap[entry[V]]
	records map[V]*record[V, E]
	tree    []E
	seq     uint64
	dropped []V // beyond the radius, not yet handed to Released
}

// Encounter creates the discovery record and enqueues it.
func (f *closestFrontier[V, E]) Encounter(v V, s Step[V, E]) error {
	r := &record[V, E]{}
	if !s.Root {
		p, err := f.candidate(s)
		if err != nil {
			return err
		}
		r.priority, r.from, r.edge, r.hasEdge = p, s.From, s.Edge, true
	}
	f.seq++
	r.seq = f.seq
	r.peer = f.pq.Insert(entry[V]{priority: r.priority, seq: r.seq, v: v})
	f.records[v] = r

	return nil
}

// Reencounter relaxes v through s when that is strictly better.
func (f *closestFrontier[V, E]) Reencounter(v V, s Step[V, E]) error {
	p, err := f.candidate(s)
	if err != nil {
		return err
	}
	r := f.records[v]
	if r == nil || r.frozen || r.peer.IsZero() || p >= r.priority {
		return nil
	}
	if err = f.pq.Update(r.peer, entry[V]{priority: p, seq: r.seq, v: v}); err != nil {
		return err
	}
	r.priority, r.from, r.edge, r.hasEdge = p, s.From, s.Edge, true

	return nil
}

// Exhausted reports an empty heap, or a minimum beyond the radius. In the
// latter case the pending vertices are dropped and their records discarded.
func (f *closestFrontier[V, E]) Exhausted() bool {
	top, err := f.pq.Peek()
	if err != nil {
		return true
	}
	if top.priority <= f.radius {
		return false
	}
	for !f.pq.IsEmpty() {
		e, _ := f.pq.ExtractTop()
		delete(f.records, e.v)
		f.dropped = append(f.dropped, e.v)
	}

	return true
}

// Released hands over the vertices dropped by Exhausted since the last call.
func (f *closestFrontier[V, E]) Released() []V {
	out := f.dropped
	f.dropped = nil

	return out
}

// Next pops the minimum and freezes its record.
func (f *closestFrontier[V, E]) Next() (V, error) {
	e, err := f.pq.ExtractTop()
	if err != nil {
		var zero V

		return zero, fmt.Errorf("%w: %w", ErrExhausted, err)
	}
	r := f.records[e.v]
	r.frozen = true
	r.peer = heap.Peer{}
	if r.hasEdge {
		f.tree = append(f.tree, r.edge)
	}

	return e.v, nil
}

// candidate computes Combine(priority of s.From, weight of s.Edge).
func (f *closestFrontier[V, E]) candidate(s Step[V, E]) (float64, error) {
	w := f.g.EdgeWeight(s.Edge)
	if w < 0 || math.IsNaN(w) {
		a, b := f.g.Endpoints(s.Edge)

		return 0, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, a, b, w)
	}

	return f.combine(f.records[s.From].priority, w), nil
}
