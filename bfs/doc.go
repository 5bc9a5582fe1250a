// Package bfs runs breadth-first search over a core.Graph and reports the
// visit order, hop-count depth and parent of every reached vertex.
//
// BFS is a thin layer over traverse.BreadthFirst: the FIFO frontier decides
// the order, this package adds depth limits, neighbor filtering, hooks,
// context cancellation and the BFSResult bookkeeping. Edge weights are
// ignored; every edge is one hop. Directed edges (including per-edge
// directions in a mixed graph) are only followed from From to To.
//
// Hook order for each vertex:
//
//	OnEnqueue  first time the vertex is reached (the start vertex at depth 0)
//	OnDequeue  the vertex leaves the queue; its new neighbors are enqueued next
//	OnVisit    the vertex has been expanded; a non-nil error aborts the search
//
// Neighbors are enqueued in the order core.Graph returns them, so results are
// reproducible. Mutating the graph during a search fails with
// traverse.ErrConcurrentModification.
//
// Usage:
//
//	res, err := bfs.BFS(g, "start",
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(3),
//		bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ctx.Err(), a wrapped traverse error or a wrapped OnVisit error.
//		// res holds whatever was visited before a mid-search failure.
//	}
//	path, err := res.PathTo("goal") // ErrNoPath if "goal" was not reached
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
