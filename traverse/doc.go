// Package traverse implements lazy, one-shot graph traversals built from one
// shared skeleton.
//
// The skeleton (Traversal) owns the visitation state machine:
//
//	NotStarted → InComponent ⇄ ComponentExhausted → AllExhausted
//
// It discovers vertices, asks a Frontier which vertex comes next, expands that
// vertex's walkable edges and, in cross-component mode, restarts discovery from
// the first unseen vertex once a component runs dry.
//
// A Frontier decides the order:
//
//   - ClosestFirst pops the vertex with the smallest priority from a heap.Heap
//     and relaxes its neighbors through a Combine strategy. Sum yields Dijkstra
//     shortest-path trees, EdgeOnly yields Prim minimum spanning trees.
//   - BreadthFirst is a FIFO queue with depth and parent bookkeeping.
//   - DepthFirst is a LIFO stack producing a true preorder.
//
// The graph is a read-only collaborator described by the Graph interface; any
// representation works as long as it can list vertices, list the edges that can
// be walked out of a vertex, report an edge's endpoints and its weight.
// *core.Graph satisfies Graph[string, *core.Edge].
//
// Graphs that also implement Versioned are checked on every step: a mutation
// after construction makes the traversal stop with ErrConcurrentModification.
//
// Usage:
//
//	cf, err := traverse.NewClosestFirst(g, traverse.Sum,
//		traverse.WithStart[string, *core.Edge]("A"),
//		traverse.WithHeap[string, *core.Edge](heap.KindFibonacci))
//	if err != nil { ... }
//	for v := range cf.All() {
//		d, _ := cf.Priority(v)
//		fmt.Println(v, d)
//	}
//	if err := cf.Err(); err != nil { ... }
//
// Traversals are not safe for concurrent use and cannot be restarted.
//
// Errors:
//
//	ErrNilGraph               - graph is nil, or an interface holding a nil pointer.
//	ErrNilFrontier            - New was given a nil frontier.
//	ErrStartNotFound          - WithStart names a vertex the graph does not have.
//	ErrNegativeWeight         - closest-first met an edge with weight < 0.
//	ErrExhausted              - a frontier was asked for a vertex it does not hold.
//	ErrConcurrentModification - the graph changed while being traversed.
package traverse
