// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim, Kruskal and the spanning-forest variant via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/heap"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, unweighted, or (for Prim and Forest) holds a
// negative weight.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates Compute was asked for a method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root by closest-first traversal).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodForest selects the minimum spanning forest (Prim restarted in every component).
const MethodForest = "forest"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string     one of MethodPrim, MethodKruskal or MethodForest.
//	Root   string     start vertex ID for Prim; ignored otherwise.
//	Heap   heap.Kind  priority queue for Prim and Forest.
//	Logger            debug sink for the traversal, zerolog.Nop() by default.
type MSTOptions struct {
	// Method to use: MethodPrim, MethodKruskal or MethodForest.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Heap selects the priority queue backing Prim and Forest.
	Heap heap.Kind

	// Logger receives traversal debug events.
	Logger zerolog.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithHeap returns an Option that selects the priority queue implementation.
func WithHeap(kind heap.Kind) Option {
	return func(opts *MSTOptions) {
		opts.Heap = kind
	}
}

// WithLogger returns an Option that routes traversal debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal)
//	– Heap   = heap.KindBinary
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
		Heap:   heap.KindBinary,
		Logger: zerolog.Nop(),
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root) with opts.Heap.
//	– MethodForest:  Forest(graph) with opts.Heap.
//	– Otherwise:     ErrUnknownMethod.
//
// Returns the tree edges, their total weight and an error if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	pass := []Option{WithHeap(opts.Heap), WithLogger(opts.Logger)}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root, pass...)
	case MethodForest:
		return Forest(graph, pass...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate enforces the undirected weighted precondition shared by every method.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
