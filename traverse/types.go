package traverse

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/frontier/heap"
)

// Sentinel errors returned by traversals.
var (
	// ErrNilGraph indicates a nil graph was passed to a constructor.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNilFrontier indicates New was called without a frontier.
	ErrNilFrontier = errors.New("traverse: frontier is nil")

	// ErrStartNotFound indicates the configured start vertex is not in the graph.
	ErrStartNotFound = errors.New("traverse: start vertex not found")

	// ErrNegativeWeight indicates a closest-first traversal met a negative edge weight.
	ErrNegativeWeight = errors.New("traverse: negative edge weight")

	// ErrExhausted indicates a frontier was asked for a vertex while empty.
	ErrExhausted = errors.New("traverse: frontier exhausted")

	// ErrConcurrentModification indicates the graph changed during traversal.
	ErrConcurrentModification = errors.New("traverse: graph modified during traversal")
)

// Graph is the read-only collaborator every traversal walks.
//
// Neighbors returns the edges that can be walked out of v: outgoing edges for
// directed edges, every incident edge for undirected ones. Endpoints may return
// the pair in either orientation; the traversal steps to whichever endpoint is
// not the vertex being expanded.
type Graph[V comparable, E any] interface {
	Vertices() []V
	Neighbors(v V) ([]E, error)
	Endpoints(e E) (V, V)
	EdgeWeight(e E) float64
}

// Versioned is implemented by graphs that count their mutations.
type Versioned interface {
	Version() uint64
}

// Step describes how a vertex was reached.
type Step[V comparable, E any] struct {
	// From is the vertex being expanded. Zero when Root is true.
	From V

	// Edge is the edge walked from From. Zero when Root is true.
	Edge E

	// Root marks the first vertex of a component.
	Root bool
}

// Frontier decides visiting order for the Traversal skeleton.
//
// The skeleton calls Encounter exactly once per vertex, the first time it
// becomes reachable, and Reencounter on every later edge leading to it
// (including edges to vertices already returned by Next).
type Frontier[V comparable, E any] interface {
	Encounter(v V, s Step[V, E]) error
	Reencounter(v V, s Step[V, E]) error
	Exhausted() bool
	Next() (V, error)
}

// Releaser is implemented by frontiers that can give up encountered vertices
// without producing them. Released vertices count as unseen again, so a later
// component may reach them or start from them.
type Releaser[V comparable] interface {
	Released() []V
}

// State is the position of a Traversal in its state machine.
type State int

const (
	// NotStarted: Next has not been called yet.
	NotStarted State = iota
	// InComponent: vertices of the current component are being produced.
	InComponent
	// ComponentExhausted: the current component ran dry.
	ComponentExhausted
	// AllExhausted: nothing is left to visit, or the traversal failed.
	AllExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InComponent:
		return "in-component"
	case ComponentExhausted:
		return "component-exhausted"
	case AllExhausted:
		return "all-exhausted"
	default:
		return "unknown"
	}
}

// Combine derives a vertex priority from its predecessor's priority and the
// weight of the edge between them.
type Combine func(prev, weight float64) float64

// Sum accumulates path length: closest-first becomes Dijkstra.
func Sum(prev, weight float64) float64 { return prev + weight }

// EdgeOnly keeps the connecting edge weight only: closest-first becomes Prim.
func EdgeOnly(_, weight float64) float64 { return weight }

// Options configures a traversal. Fields that a frontier does not use are ignored.
type Options[V comparable, E any] struct {
	// Start is the first vertex visited when HasStart is set.
	Start    V
	HasStart bool

	// CrossComponent continues into unseen components once one is exhausted.
	// Unless set explicitly it is true exactly when no start vertex is given.
	CrossComponent    bool
	crossComponentSet bool

	// EdgeFilter, when non-nil, drops every edge for which it returns false.
	EdgeFilter func(from V, e E) bool

	// OnVisit is called for every vertex produced by Next.
	OnVisit func(v V)

	// OnEdge is called for every edge considered during expansion.
	OnEdge func(from, to V, e E)

	// OnComponentStart and OnComponentEnd receive the component root.
	OnComponentStart func(root V)
	OnComponentEnd   func(root V)

	// Heap selects the closest-first priority queue backend.
	Heap heap.Kind

	// Radius stops a closest-first component once the smallest pending
	// priority exceeds it. The vertices left pending are released; in
	// cross-component mode they are visited later, from another root.
	Radius float64

	// Logger receives debug events. Defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// Option configures Options.
type Option[V comparable, E any] func(*Options[V, E])

// DefaultOptions returns cross-component traversal with a binary heap and no radius.
func DefaultOptions[V comparable, E any]() Options[V, E] {
	return Options[V, E]{
		CrossComponent: true,
		Heap:           heap.KindBinary,
		Radius:         math.Inf(1),
		Logger:         zerolog.Nop(),
	}
}

// WithStart fixes the first vertex and, unless overridden, disables
// cross-component continuation.
func WithStart[V comparable, E any](v V) Option[V, E] {
	return func(o *Options[V, E]) {
		o.Start = v
		o.HasStart = true
	}
}

// WithCrossComponent forces cross-component continuation on or off.
func WithCrossComponent[V comparable, E any](on bool) Option[V, E] {
	return func(o *Options[V, E]) {
		o.CrossComponent = on
		o.crossComponentSet = true
	}
}

// WithEdgeFilter restricts expansion to edges for which keep returns true.
func WithEdgeFilter[V comparable, E any](keep func(from V, e E) bool) Option[V, E] {
	return func(o *Options[V, E]) { o.EdgeFilter = keep }
}

// WithOnVisit registers a callback for every produced vertex.
func WithOnVisit[V comparable, E any](fn func(v V)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnVisit = fn }
}

// WithOnEdge registers a callback for every expanded edge.
func WithOnEdge[V comparable, E any](fn func(from, to V, e E)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnEdge = fn }
}

// WithOnComponentStart registers a callback fired when a component begins.
func WithOnComponentStart[V comparable, E any](fn func(root V)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnComponentStart = fn }
}

// WithOnComponentEnd registers a callback fired when a component is exhausted.
func WithOnComponentEnd[V comparable, E any](fn func(root V)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnComponentEnd = fn }
}

// WithHeap selects the heap backend used by ClosestFirst.
func WithHeap[V comparable, E any](kind heap.Kind) Option[V, E] {
	return func(o *Options[V, E]) { o.Heap = kind }
}

// WithRadius bounds ClosestFirst priorities.
// A vertex beyond r from the current root is not lost: cross-component mode
// visits it later, through a root within r or as a root of its own.
// Panics if r is negative or NaN.
func WithRadius[V comparable, E any](r float64) Option[V, E] {
	if r < 0 || math.IsNaN(r) {
		panic("traverse: WithRadius requires r >= 0")
	}

	return func(o *Options[V, E]) { o.Radius = r }
}

// WithLogger routes debug events to l.
func WithLogger[V comparable, E any](l zerolog.Logger) Option[V, E] {
	return func(o *Options[V, E]) { o.Logger = l }
}

// buildOptions applies opts over DefaultOptions and resolves the
// cross-component default.
func buildOptions[V comparable, E any](opts []Option[V, E]) Options[V, E] {
	o := DefaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.crossComponentSet {
		o.CrossComponent = !o.HasStart
	}

	return o
}

// opposite returns the endpoint of e that is not from. Self-loops return from.
func opposite[V comparable, E any](g Graph[V, E], e E, from V) V {
	a, b := g.Endpoints(e)
	if a == from {
		return b
	}

	return a
}
