// Package prim_kruskal provides Prim's Minimum Spanning Tree (MST) algorithm as
// closest-first traversal where a vertex's priority is the weight of the single
// edge connecting it to the tree.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/traverse"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex.
//
// Error Conditions:
//   - ErrInvalidGraph      : graph is nil, directed, unweighted, or has a negative weight.
//   - ErrEmptyRoot         : the provided root string is empty.
//   - core.ErrVertexNotFound: the root vertex does not exist in the graph.
//   - ErrDisconnected      : |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed() and !graph.HasDirectedEdges().
//  2. Retrieve sorted vertex IDs; if len(vertices)==0 → ErrDisconnected.
//     If len(vertices)==1, check that root matches the single vertex → return trivial empty MST.
//  3. Validate root: root != "", graph.HasVertex(root).
//  4. Run closest-first with traverse.EdgeOnly from root: every popped vertex
//     freezes the lightest edge that reached it.
//  5. If fewer than |V| vertices were reached → ErrDisconnected.
//  6. Return the tree edges in the order their vertices joined, and the total weight.
//
// Complexity: O(E + V log V) with heap.KindFibonacci, O(E log V) with heap.KindBinary.
// Memory: O(V).
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil, weighted, undirected and have no direct edges.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	// 2. Trivial sizes.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}

		return []core.Edge{}, 0, nil
	}

	// 3. Validate root.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 4. Closest-first, single component.
	cfg := buildOptions(opts)
	mst, total, reached, err := grow(graph, cfg,
		traverse.WithStart[string, *core.Edge](root))
	if err != nil {
		return nil, 0, err
	}

	// 5. Spanning check.
	if reached < len(vertices) {
		return nil, 0, ErrDisconnected
	}

	// 6. Done.
	return mst, total, nil
}

// Forest computes a minimum spanning forest: one minimum spanning tree per
// connected component, components visited in vertex ID order.
// Disconnected graphs are fine; an empty graph yields an empty forest.
//
// Returns ErrInvalidGraph under the same conditions as Prim.
// Complexity: as Prim.
func Forest(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	cfg := buildOptions(opts)
	mst, total, _, err := grow(graph, cfg,
		traverse.WithCrossComponent[string, *core.Edge](true))
	if err != nil {
		return nil, 0, err
	}

	return mst, total, nil
}

// grow drains a closest-first EdgeOnly traversal and collects its tree edges.
func grow(graph *core.Graph, cfg MSTOptions, extra ...traverse.Option[string, *core.Edge]) ([]core.Edge, float64, int, error) {
	topts := append([]traverse.Option[string, *core.Edge]{
		traverse.WithHeap[string, *core.Edge](cfg.Heap),
		traverse.WithLogger[string, *core.Edge](cfg.Logger),
	}, extra...)
	cf, err := traverse.NewClosestFirst(graph, traverse.EdgeOnly, topts...)
	if err != nil {
		return nil, 0, 0, mapTraverseErr(err)
	}

	reached := 0
	for cf.Next() {
		reached++
	}
	if err = cf.Err(); err != nil {
		return nil, 0, 0, mapTraverseErr(err)
	}

	tree := cf.TreeEdges()
	mst := make([]core.Edge, 0, len(tree))
	var total float64
	for _, e := range tree {
		mst = append(mst, *e)
		total += e.Weight
	}

	return mst, total, reached, nil
}

// mapTraverseErr folds a negative weight into ErrInvalidGraph.
func mapTraverseErr(err error) error {
	if errors.Is(err, traverse.ErrNegativeWeight) {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	return fmt.Errorf("prim_kruskal: %w", err)
}
