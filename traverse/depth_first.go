package traverse

// DepthFirst visits vertices in depth-first preorder. Neighbors are explored in
// the order the graph lists them.
type DepthFirst[V comparable, E any] struct {
	*Traversal[V, E]
	f *stackFrontier[V, E]
}

// NewDepthFirst builds a depth-first traversal over g.
// Returns ErrNilGraph or ErrStartNotFound.
func NewDepthFirst[V comparable, E any](g Graph[V, E], opts ...Option[V, E]) (*DepthFirst[V, E], error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	f := &stackFrontier[V, E]{
		done:   make(map[V]struct{}),
		parent: make(map[V]V),
	}
	t, err := New[V, E](g, f, opts...)
	if err != nil {
		return nil, err
	}

	return &DepthFirst[V, E]{Traversal: t, f: f}, nil
}

// Parent returns the vertex from which v was entered.
// ok is false for roots and vertices not yet visited.
func (d *DepthFirst[V, E]) Parent(v V) (V, bool) {
	if _, ok := d.f.done[v]; !ok {
		var zero V

		return zero, false
	}
	p, ok := d.f.parent[v]

	return p, ok
}

// stackFrontier is a LIFO frontier. A vertex may sit on the stack several
// times; the topmost copy wins and stale copies are skipped on pop.
type stackFrontier[V comparable, E any] struct {
	stack   []frame[V]
	pending []frame[V] // pushes from the current expansion, in graph order
	done    map[V]struct{}
	parent  map[V]V
}

type frame[V comparable] struct {
	v    V
	from V
	root bool
}

func (f *stackFrontier[V, E]) Encounter(v V, s Step[V, E]) error {
	f.pending = append(f.pending, frame[V]{v: v, from: s.From, root: s.Root})

	return nil
}

// Reencounter pushes v again so a deeper path enters it first.
func (f *stackFrontier[V, E]) Reencounter(v V, s Step[V, E]) error {
	if _, ok := f.done[v]; ok {
		return nil
	}
	f.pending = append(f.pending, frame[V]{v: v, from: s.From})

	return nil
}

func (f *stackFrontier[V, E]) Exhausted() bool {
	f.flush()
	for len(f.stack) > 0 {
		if _, ok := f.done[f.stack[len(f.stack)-1].v]; !ok {
			return false
		}
		f.stack = f.stack[:len(f.stack)-1]
	}

	return true
}

func (f *stackFrontier[V, E]) Next() (V, error) {
	if f.Exhausted() {
		var zero V

		return zero, ErrExhausted
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	f.done[top.v] = struct{}{}
	if !top.root {
		f.parent[top.v] = top.from
	}

	return top.v, nil
}

// flush moves pending frames onto the stack in reverse, so the first listed
// neighbor ends up on top.
func (f *stackFrontier[V, E]) flush() {
	for i := len(f.pending) - 1; i >= 0; i-- {
		f.stack = append(f.stack, f.pending[i])
	}
	f.pending = f.pending[:0]
}
