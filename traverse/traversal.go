package traverse

import (
	"fmt"
	"iter"
	"reflect"
)

// Traversal is the cross-component skeleton shared by every frontier.
//
// Iterate with Next/Vertex/Err or range over All. A Traversal is one-shot:
// once AllExhausted it stays there.
type Traversal[V comparable, E any] struct {
	g        Graph[V, E]
	frontier Frontier[V, E]
	opts     Options[V, E]

	vertices []V            // snapshot taken at construction
	cursor   int            // next index of vertices to try as a component root
	seen     map[V]struct{} // encountered at least once

	versioned Versioned
	version   uint64

	state State
	root  V
	cur   V
	err   error
}

// New builds a Traversal over g whose order is decided by f.
//
// Steps:
//  1. Reject a nil graph or frontier.
//  2. Resolve options and snapshot Vertices().
//  3. Validate the start vertex.
//  4. Snapshot the graph version when g implements Versioned.
//
// Returns ErrNilGraph, ErrNilFrontier or ErrStartNotFound.
func New[V comparable, E any](g Graph[V, E], f Frontier[V, E], opts ...Option[V, E]) (*Traversal[V, E], error) {
	// 1) Collaborators
	if isNil(g) {
		return nil, ErrNilGraph
	}
	if isNil(f) {
		return nil, ErrNilFrontier
	}

	// 2) Options and vertex snapshot
	o := buildOptions(opts)
	t := &Traversal[V, E]{
		g:        g,
		frontier: f,
		opts:     o,
		vertices: g.Vertices(),
		seen:     make(map[V]struct{}),
		state:    NotStarted,
	}

	// 3) Start vertex must exist
	if o.HasStart {
		found := false
		for _, v := range t.vertices {
			if v == o.Start {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %v", ErrStartNotFound, o.Start)
		}
	}

	// 4) Fail-fast snapshot
	if vg, ok := g.(Versioned); ok {
		t.versioned = vg
		t.version = vg.Version()
	}

	return t, nil
}

// State reports the current state.
func (t *Traversal[V, E]) State() State { return t.state }

// Vertex returns the vertex produced by the last successful Next.
func (t *Traversal[V, E]) Vertex() V { return t.cur }

// Err returns the error that stopped the traversal, if any.
func (t *Traversal[V, E]) Err() error { return t.err }

// Seen reports whether v has been encountered.
func (t *Traversal[V, E]) Seen(v V) bool {
	_, ok := t.seen[v]

	return ok
}

// All yields the remaining vertices in traversal order.
// Check Err after the loop.
func (t *Traversal[V, E]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for t.Next() {
			if !yield(t.Vertex()) {
				return
			}
		}
	}
}

// Next advances to the next vertex. It returns false when the traversal is
// exhausted or failed; Err tells the two apart.
//
// Steps:
//  1. Fail fast if the graph changed.
//  2. Start the first component on the first call.
//  3. While the frontier is exhausted, close the component and, in
//     cross-component mode, open the next one.
//  4. Pop the next vertex, report it, expand its edges.
func (t *Traversal[V, E]) Next() bool {
	if t.state == AllExhausted {
		return false
	}

	// 1) Fail-fast modification check
	if t.versioned != nil && t.versioned.Version() != t.version {
		return t.fail(fmt.Errorf("%w: version %d, now %d",
			ErrConcurrentModification, t.version, t.versioned.Version()))
	}

	// 2) First component
	if t.state == NotStarted {
		root, ok := t.firstRoot()
		if !ok {
			t.state = AllExhausted

			return false
		}
		if err := t.startComponent(root); err != nil {
			return t.fail(err)
		}
	}

	// 3) Component boundaries
	for t.frontier.Exhausted() {
		t.release()
		if t.state == InComponent {
			t.state = ComponentExhausted
			t.opts.Logger.Debug().Interface("root", t.root).Msg("component exhausted")
			if t.opts.OnComponentEnd != nil {
				t.opts.OnComponentEnd(t.root)
			}
		}
		if !t.opts.CrossComponent {
			t.state = AllExhausted

			return false
		}
		root, ok := t.nextUnseen()
		if !ok {
			t.state = AllExhausted

			return false
		}
		if err := t.startComponent(root); err != nil {
			return t.fail(err)
		}
	}

	// 4) Pop, report, expand
	v, err := t.frontier.Next()
	if err != nil {
		return t.fail(err)
	}
	t.cur = v
	if t.opts.OnVisit != nil {
		t.opts.OnVisit(v)
	}
	if err = t.expand(v); err != nil {
		return t.fail(err)
	}

	return true
}

// firstRoot picks the configured start or the first unseen vertex.
func (t *Traversal[V, E]) firstRoot() (V, bool) {
	if t.opts.HasStart {
		return t.opts.Start, true
	}

	return t.nextUnseen()
}

// nextUnseen advances the cursor to the next vertex never encountered.
// Every vertex behind the cursor has been visited, so released vertices
// always lie ahead of it.
func (t *Traversal[V, E]) nextUnseen() (V, bool) {
	for t.cursor < len(t.vertices) {
		v := t.vertices[t.cursor]
		t.cursor++
		if _, ok := t.seen[v]; !ok {
			return v, true
		}
	}
	var zero V

	return zero, false
}

// release marks the vertices the frontier gave up on as unseen.
func (t *Traversal[V, E]) release() {
	r, ok := t.frontier.(Releaser[V])
	if !ok {
		return
	}
	for _, v := range r.Released() {
		delete(t.seen, v)
		t.opts.Logger.Debug().Interface("vertex", v).Msg("vertex released")
	}
}

// startComponent encounters root as a component root.
func (t *Traversal[V, E]) startComponent(root V) error {
	t.state = InComponent
	t.root = root
	t.seen[root] = struct{}{}
	t.opts.Logger.Debug().Interface("root", root).Msg("component start")
	if t.opts.OnComponentStart != nil {
		t.opts.OnComponentStart(root)
	}

	return t.frontier.Encounter(root, Step[V, E]{Root: true})
}

// expand walks every kept edge out of v and forwards the far endpoint to the
// frontier as a first or repeated encounter.
func (t *Traversal[V, E]) expand(v V) error {
	edges, err := t.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %v: %w", v, err)
	}
	for _, e := range edges {
		if t.opts.EdgeFilter != nil && !t.opts.EdgeFilter(v, e) {
			continue
		}
		to := opposite(t.g, e, v)
		if t.opts.OnEdge != nil {
			t.opts.OnEdge(v, to, e)
		}
		step := Step[V, E]{From: v, Edge: e}
		if _, ok := t.seen[to]; ok {
			err = t.frontier.Reencounter(to, step)
		} else {
			t.seen[to] = struct{}{}
			err = t.frontier.Encounter(to, step)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// fail records err, moves to AllExhausted and returns false for Next.
func (t *Traversal[V, E]) fail(err error) bool {
	t.err = err
	t.state = AllExhausted
	t.opts.Logger.Debug().Err(err).Msg("traversal stopped")

	return false
}

// isNil reports a nil interface or an interface holding a nil pointer, map,
// slice, func or chan.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	switch v := reflect.ValueOf(x); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
