// Package frontier is a closest-first graph traversal toolkit: one iterator
// skeleton, pluggable frontiers, and two interchangeable priority queues.
//
// What is inside?
//
//	heap/          addressable min/max heaps (binary, Fibonacci) with decrease-key handles
//	traverse/      the cross-component traversal skeleton and its frontiers:
//	                ClosestFirst (Dijkstra, Prim, custom Combine), BreadthFirst, DepthFirst
//	core/          thread-safe in-memory Graph with a modification counter
//	dijkstra/      shortest-path trees on top of ClosestFirst + Sum
//	prim_kruskal/  minimum spanning trees and forests (ClosestFirst + EdgeOnly, Kruskal)
//	bfs/           hop-count search on top of BreadthFirst
//	cmd/frontier   CLI running the above over YAML, JSON or TOML graph files
//
// Quick ASCII example:
//
//	(A)──4──(B)
//	 │2      │5
//	(C)──10─(D)
//
// ClosestFirst from A with Sum visits A=0, C=2, B=4, D=9; with EdgeOnly it
// grows the spanning tree A-C, A-B, B-D.
//
//	go get github.com/katalvlaran/frontier
package frontier
