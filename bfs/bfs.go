// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/traverse"
)

// walker couples the options with the underlying breadth-first traversal.
type walker struct {
	opts BFSOptions
	bf   *traverse.BreadthFirst[string, *core.Edge]
	res  *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Edge weights are ignored: every edge counts as one hop.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// a wrapped traverse error (e.g. traverse.ErrConcurrentModification),
// or any user-supplied hook error. The partial result is returned with
// every error raised after the search started.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		opts: o,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	bf, err := traverse.NewBreadthFirst[string, *core.Edge](g,
		traverse.WithStart[string, *core.Edge](startID),
		traverse.WithEdgeFilter(w.keep),
		traverse.WithOnEdge(w.onEdge),
		traverse.WithOnComponentStart[string, *core.Edge](func(root string) { o.OnEnqueue(root, 0) }),
		traverse.WithOnVisit[string, *core.Edge](func(id string) { o.OnDequeue(id, w.depth(id)) }),
		traverse.WithLogger[string, *core.Edge](o.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	w.bf = bf

	return w.res, w.loop()
}

// loop drains the traversal until exhaustion, error, or cancellation.
func (w *walker) loop() error {
	for {
		// cancellation check (once per vertex)
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		if !w.bf.Next() {
			break
		}
		if err := w.visit(w.bf.Vertex()); err != nil {
			return err
		}
	}
	if err := w.bf.Err(); err != nil {
		return fmt.Errorf("bfs: %w", err)
	}

	return nil
}

// visit records the vertex in Order, Depth and Parent and calls OnVisit.
func (w *walker) visit(id string) error {
	d := w.depth(id)
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = d
	if p, ok := w.bf.Parent(id); ok {
		w.res.Parent[id] = p
	}
	if err := w.opts.OnVisit(id, d); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// keep applies FilterNeighbor and MaxDepth to the edge curr→neighbor.
func (w *walker) keep(curr string, e *core.Edge) bool {
	if w.opts.Ctx.Err() != nil {
		return false
	}
	if !w.opts.FilterNeighbor(curr, core.Opposite(e, curr)) {
		return false
	}

	return w.opts.MaxDepth == 0 || w.depth(curr)+1 <= w.opts.MaxDepth
}

// onEdge fires OnEnqueue for a neighbor reached for the first time.
func (w *walker) onEdge(curr, neighbor string, _ *core.Edge) {
	if !w.bf.Seen(neighbor) {
		w.opts.OnEnqueue(neighbor, w.depth(curr)+1)
	}
}

func (w *walker) depth(id string) int {
	d, _ := w.bf.Depth(id)

	return d
}
