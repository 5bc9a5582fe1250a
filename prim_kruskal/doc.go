// Package prim_kruskal computes minimum spanning trees and forests of an
// undirected, weighted *core.Graph.
//
// Three entry points, one result shape ([]core.Edge, total weight, error):
//
//	Prim(g, root, opts...)  closest-first traversal from root with
//	                        traverse.EdgeOnly: a vertex's priority is the
//	                        lightest edge tying it to the tree so far, lowered
//	                        in place through its heap handle.
//	Forest(g, opts...)      the same traversal in cross-component mode; every
//	                        component gets its own tree, roots in ID order.
//	Kruskal(g)              sort edges by weight (stable), union-find to skip
//	                        cycles. Independent of traverse; used to cross-check.
//
// Compute dispatches on MSTOptions.Method (MethodPrim, MethodKruskal,
// MethodForest) and is what the frontier CLI calls.
//
// Heaps. WithHeap(heap.KindFibonacci) gives Prim O(E + V log V); the default
// binary heap gives O(E log V) and usually wins on sparse graphs. Ties are
// broken by discovery order, so both heaps return the same edges in the same
// order. Kruskal is O(E log E).
//
// Errors:
//
//	ErrInvalidGraph       nil, unweighted or directed graph, any directed edge in
//	                      a mixed graph; for Prim and Forest also a negative weight
//	ErrEmptyRoot          Prim with root == ""
//	core.ErrVertexNotFound Prim with a root the graph does not have
//	ErrDisconnected       Prim or Kruskal on an empty or disconnected graph
//	ErrUnknownMethod      Compute with an unrecognised method
package prim_kruskal
