// Package dijkstra computes single-source shortest paths on graphs with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra is closest-first traversal with priority = accumulated path
//     weight (traverse.Sum). This package is a thin facade over
//     traverse.ClosestFirst that validates inputs, translates options and
//     shapes the result.
//   - Decrease-key is real, not lazy: each vertex sits in the heap once and its
//     handle is updated when a shorter path appears.
//   - The heap backend is selectable: heap.KindBinary (default) or
//     heap.KindFibonacci.
//
// Key features:
//
//   - ShortestPaths returns a Tree with Distance, PathTo, EdgesTo, Edges and the
//     settling Order.
//   - Dijkstra returns the classic (dist, prev) maps.
//   - MaxDistance: vertices farther than the cap are never settled.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is impassable.
//   - Mixed edges: directed edges are only walked From → To, undirected both ways.
//   - Unweighted graphs: every edge weighs core.DefaultWeight, distances count hops.
//
// Complexity:
//
//   - Time:  O(E + V log V) with the Fibonacci heap, O(E log V) with the binary heap.
//   - Space: O(V).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrVertexNotFound:  the source vertex does not exist.
//   - ErrNegativeWeight:  some edge has a negative weight (pre-scan, before any work).
//   - ErrBadMaxDistance:  panic value of WithMaxDistance for negative input.
//   - ErrBadInfThreshold: panic value of WithInfEdgeThreshold for non-positive input.
//   - ErrUnreachable:     Tree.PathTo / Tree.EdgesTo on a vertex never settled.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to B: %g, parent: %s\n", dist["B"], prev["B"])
//
// Thread safety: the graph must not be mutated during a call; a mutation is
// detected and reported as traverse.ErrConcurrentModification.
package dijkstra
