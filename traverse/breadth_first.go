package traverse

// BreadthFirst visits vertices level by level from each component root.
type BreadthFirst[V comparable, E any] struct {
	*Traversal[V, E]
	f *queueFrontier[V, E]
}

// NewBreadthFirst builds a breadth-first traversal over g.
// Returns ErrNilGraph or ErrStartNotFound.
func NewBreadthFirst[V comparable, E any](g Graph[V, E], opts ...Option[V, E]) (*BreadthFirst[V, E], error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	f := &queueFrontier[V, E]{
		depth:  make(map[V]int),
		parent: make(map[V]V),
	}
	t, err := New[V, E](g, f, opts...)
	if err != nil {
		return nil, err
	}

	return &BreadthFirst[V, E]{Traversal: t, f: f}, nil
}

// Depth returns the number of edges between v and its component root.
// ok is false for vertices never encountered.
func (b *BreadthFirst[V, E]) Depth(v V) (int, bool) {
	d, ok := b.f.depth[v]

	return d, ok
}

// Parent returns the vertex that first encountered v.
// ok is false for roots and vertices never encountered.
func (b *BreadthFirst[V, E]) Parent(v V) (V, bool) {
	p, ok := b.f.parent[v]

	return p, ok
}

// queueFrontier is a FIFO frontier. Depth and parent are fixed at first encounter.
type queueFrontier[V comparable, E any] struct {
	queue  []V
	head   int
	depth  map[V]int
	parent map[V]V
}

func (f *queueFrontier[V, E]) Encounter(v V, s Step[V, E]) error {
	if s.Root {
		f.depth[v] = 0
	} else {
		f.depth[v] = f.depth[s.From] + 1
		f.parent[v] = s.From
	}
	f.queue = append(f.queue, v)

	return nil
}

func (f *queueFrontier[V, E]) Reencounter(V, Step[V, E]) error { return nil }

func (f *queueFrontier[V, E]) Exhausted() bool { return f.head == len(f.queue) }

func (f *queueFrontier[V, E]) Next() (V, error) {
	if f.Exhausted() {
		var zero V

		return zero, ErrExhausted
	}
	v := f.queue[f.head]
	f.head++
	// Reclaim the consumed prefix once it dominates the buffer.
	if f.head > 64 && f.head*2 > len(f.queue) {
		f.queue = append(f.queue[:0], f.queue[f.head:]...)
		f.head = 0
	}

	return v, nil
}
