// Package heap provides two interchangeable priority queues with efficient
// decrease-key, both satisfying the Heap interface:
//
//   - Binary:    array-backed binary heap, O(log n) Insert / ExtractTop / Update.
//   - Fibonacci: forest of heap-ordered trees, amortized O(1) Insert and Update,
//     amortized O(log n) ExtractTop.
//
// Every Insert returns a Peer, a generational handle into the heap's arena.
// Passing the Peer to Update lowers the element's key without searching for it.
// Once the element is extracted (or the heap cleared) the Peer turns stale and
// Update reports ErrStalePeer.
//
// Ordering is supplied at construction as a less function, or taken from
// cmp.Less for cmp.Ordered types via the *Ordered constructors. WithMax turns
// a heap into a max-heap by negating the comparison; there is no separate
// code path.
//
// Fibonacci heaps pay larger constants for cheaper decrease-key. Shortest-path
// and spanning-tree traversals issue up to E decrease-keys, so with a
// Fibonacci heap they run in O(E + V log V) instead of O(E log V).
//
// Example:
//
//	h := heap.NewFibonacciOrdered[int]()
//	peers := h.InsertAll(5, 3, 8, 1, 9, 2)
//	_ = h.Update(peers[4], 0) // 9 → 0
//	top, _ := h.ExtractTop()  // 0
//
// Errors:
//
//	ErrEmptyHeap          - ExtractTop/Peek on an empty heap.
//	ErrInvalidDecreaseKey - Update would move an element away from the top.
//	ErrStalePeer          - Update on an extracted or cleared element.
//	ErrUnknownKind        - New/ParseKind with an unsupported Kind.
//
// Heaps are not safe for concurrent use.
package heap
