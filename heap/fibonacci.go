package heap

import (
	"cmp"
	"math"
)

// nilNode is the "no link" sentinel in the node arena.
const nilNode int32 = -1

// fibNode is one arena cell. Links are arena indices, never pointers.
// Siblings form a circular doubly linked list through left/right.
type fibNode[T any] struct {
	value  T
	parent int32
	child  int32 // any one child; the rest are reachable through its sibling ring
	left   int32
	right  int32
	rank   int32 // number of children
	mark   bool  // lost a child since it last became a child
	live   bool
	gen    uint32
}

// Fibonacci is a Fibonacci heap: a circular list of heap-ordered trees with a
// pointer to the minimum root.
//
// Insert and Update are amortized O(1); ExtractTop is amortized O(log n).
// Nodes live in an arena and refer to each other by index, so the cyclic
// sibling and parent/child structure needs no pointer aliasing and freed
// nodes are recycled through a free list.
type Fibonacci[T any] struct {
	nodes []fibNode[T]
	free  []int32
	min   int32
	size  int
	less  func(a, b T) bool

	// scratch buffers reused across consolidations
	ranks []int32
	roots []int32
}

var _ Heap[int] = (*Fibonacci[int])(nil)

// NewFibonacci returns an empty Fibonacci heap ordered by less.
// It panics if less is nil.
func NewFibonacci[T any](less func(a, b T) bool, opts ...Option) *Fibonacci[T] {
	o := buildOptions(opts)

	return &Fibonacci[T]{
		nodes: make([]fibNode[T], 0, o.Capacity),
		min:   nilNode,
		less:  ordering(less, o),
	}
}

// NewFibonacciOrdered returns an empty Fibonacci heap using the natural ordering of T.
func NewFibonacciOrdered[T cmp.Ordered](opts ...Option) *Fibonacci[T] {
	return NewFibonacci(cmp.Less[T], opts...)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Fibonacci[T]) IsEmpty() bool { return h.size == 0 }

// Len returns the number of elements.
func (h *Fibonacci[T]) Len() int { return h.size }

// Insert wraps v in a singleton tree and splices it into the root list. O(1).
func (h *Fibonacci[T]) Insert(v T) Peer {
	x := h.alloc(v)
	if h.min == nilNode {
		h.min = x
	} else {
		h.insertAfter(h.min, x)
		if h.less(v, h.nodes[h.min].value) {
			h.min = x
		}
	}
	h.size++

	return Peer{slot: x, gen: h.nodes[x].gen}
}

// InsertAll inserts every value; each insert is already O(1).
func (h *Fibonacci[T]) InsertAll(vs ...T) []Peer {
	peers := make([]Peer, len(vs))
	for i, v := range vs {
		peers[i] = h.Insert(v)
	}

	return peers
}

// Clear drops every element and invalidates all peers.
func (h *Fibonacci[T]) Clear() {
	for i := range h.nodes {
		if h.nodes[i].live {
			h.release(int32(i))
		}
	}
	h.min = nilNode
	h.size = 0
}

// Peek returns the minimum root's value.
func (h *Fibonacci[T]) Peek() (T, error) {
	if h.min == nilNode {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.nodes[h.min].value, nil
}

// ExtractTop promotes the minimum root's children to the root list, removes
// the old minimum and consolidates the remaining roots.
func (h *Fibonacci[T]) ExtractTop() (T, error) {
	z := h.min
	if z == nilNode {
		var zero T
		return zero, ErrEmptyHeap
	}

	// 1) Children of z become roots: clear parent links and marks.
	c := h.nodes[z].child
	for k := h.nodes[z].rank; k > 0; k-- {
		next := h.nodes[c].right
		h.unlink(c)
		h.nodes[c].parent = nilNode
		h.nodes[c].mark = false
		h.insertAfter(z, c)
		c = next
	}
	h.nodes[z].child = nilNode
	h.nodes[z].rank = 0

	// 2) Remove z from the root list.
	if h.nodes[z].right == z {
		h.min = nilNode
	} else {
		h.min = h.nodes[z].right
		h.unlink(z)
		h.consolidate()
	}
	h.size--

	v := h.nodes[z].value
	h.release(z)

	return v, nil
}

// Update lowers the key referenced by p to v. A non-root whose new key beats
// its parent is cut into the root list, followed by a cascading cut.
func (h *Fibonacci[T]) Update(p Peer, v T) error {
	if !h.Contains(p) {
		return ErrStalePeer
	}
	x := p.slot
	if h.less(h.nodes[x].value, v) {
		return ErrInvalidDecreaseKey
	}
	h.nodes[x].value = v

	if y := h.nodes[x].parent; y != nilNode && h.less(v, h.nodes[y].value) {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if h.less(v, h.nodes[h.min].value) {
		h.min = x
	}

	return nil
}

// Contains reports whether p refers to a live element of h.
func (h *Fibonacci[T]) Contains(p Peer) bool {
	if p.slot < 0 || int(p.slot) >= len(h.nodes) {
		return false
	}
	n := &h.nodes[p.slot]

	return n.live && n.gen == p.gen
}

// consolidate links roots of equal rank until all ranks differ, then rescans
// the survivors for the new minimum.
func (h *Fibonacci[T]) consolidate() {
	// Snapshot the root ring; linking mutates it while we walk.
	h.roots = h.roots[:0]
	for w := h.min; ; {
		h.roots = append(h.roots, w)
		w = h.nodes[w].right
		if w == h.min {
			break
		}
	}

	h.ranks = h.ranks[:0]
	for i := 0; i < rankBound(h.size); i++ {
		h.ranks = append(h.ranks, nilNode)
	}

	for _, w := range h.roots {
		x := w
		d := h.nodes[x].rank
		for {
			for int(d) >= len(h.ranks) {
				h.ranks = append(h.ranks, nilNode)
			}
			y := h.ranks[d]
			if y == nilNode {
				break
			}
			if h.less(h.nodes[y].value, h.nodes[x].value) {
				x, y = y, x
			}
			h.link(y, x)
			h.ranks[d] = nilNode
			d++
		}
		h.ranks[d] = x
	}

	h.min = nilNode
	for _, r := range h.ranks {
		if r == nilNode {
			continue
		}
		if h.min == nilNode || h.less(h.nodes[r].value, h.nodes[h.min].value) {
			h.min = r
		}
	}
}

// rankBound sizes the consolidation table: ⌊log_1.5 n⌋ + 2 slots cover every
// rank reachable with n nodes.
func rankBound(n int) int {
	if n < 2 {
		return 2
	}

	return int(math.Log(float64(n))/math.Log(1.5)) + 2
}

// link makes root y a child of root x.
func (h *Fibonacci[T]) link(y, x int32) {
	h.unlink(y)
	h.nodes[y].parent = x
	h.nodes[y].mark = false
	if c := h.nodes[x].child; c == nilNode {
		h.nodes[x].child = y
	} else {
		h.insertAfter(c, y)
	}
	h.nodes[x].rank++
}

// cut moves x from y's child ring into the root list.
func (h *Fibonacci[T]) cut(x, y int32) {
	if h.nodes[x].right == x {
		h.nodes[y].child = nilNode
	} else {
		if h.nodes[y].child == x {
			h.nodes[y].child = h.nodes[x].right
		}
		h.unlink(x)
	}
	h.nodes[y].rank--
	h.insertAfter(h.min, x)
	h.nodes[x].parent = nilNode
	h.nodes[x].mark = false
}

// cascadingCut marks y on its first child loss and cuts it on the second,
// walking up while ancestors are already marked.
func (h *Fibonacci[T]) cascadingCut(y int32) {
	for {
		z := h.nodes[y].parent
		if z == nilNode {
			return
		}
		if !h.nodes[y].mark {
			h.nodes[y].mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

// insertAfter splices the singleton ring x in to the right of a.
func (h *Fibonacci[T]) insertAfter(a, x int32) {
	b := h.nodes[a].right
	h.nodes[x].left = a
	h.nodes[x].right = b
	h.nodes[a].right = x
	h.nodes[b].left = x
}

// unlink removes x from its ring and leaves it as a singleton ring.
func (h *Fibonacci[T]) unlink(x int32) {
	l, r := h.nodes[x].left, h.nodes[x].right
	h.nodes[l].right = r
	h.nodes[r].left = l
	h.nodes[x].left = x
	h.nodes[x].right = x
}

// alloc returns a fresh singleton node holding v.
func (h *Fibonacci[T]) alloc(v T) int32 {
	var x int32
	if n := len(h.free); n > 0 {
		x = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		h.nodes = append(h.nodes, fibNode[T]{gen: 1})
		x = int32(len(h.nodes) - 1)
	}
	nd := &h.nodes[x]
	nd.value = v
	nd.parent = nilNode
	nd.child = nilNode
	nd.left = x
	nd.right = x
	nd.rank = 0
	nd.mark = false
	nd.live = true

	return x
}

// release returns x to the free list and bumps its generation.
func (h *Fibonacci[T]) release(x int32) {
	var zero T
	nd := &h.nodes[x]
	nd.value = zero
	nd.live = false
	nd.gen++
	h.free = append(h.free, x)
}
