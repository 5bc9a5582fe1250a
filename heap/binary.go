package heap

import "cmp"

// binaryEntry is one array cell: the user value plus its arena slot.
type binaryEntry[T any] struct {
	value T
	slot  int32
}

// binarySlot maps a Peer to the entry's current array index.
// pos < 0 marks a free slot.
type binarySlot struct {
	pos int
	gen uint32
}

// Binary is an array-backed binary heap.
//
// items is kept in heap order via index arithmetic (parent(i) = (i-1)/2,
// children(i) = 2i+1, 2i+2). Every swap refreshes the moved entries' slot
// positions, so Update locates its element in O(1) and restores order in O(log n).
type Binary[T any] struct {
	items []binaryEntry[T]
	slots []binarySlot
	free  []int32
	less  func(a, b T) bool
}

var _ Heap[int] = (*Binary[int])(nil)

// NewBinary returns an empty binary heap ordered by less.
// It panics if less is nil.
func NewBinary[T any](less func(a, b T) bool, opts ...Option) *Binary[T] {
	o := buildOptions(opts)

	return &Binary[T]{
		items: make([]binaryEntry[T], 0, o.Capacity),
		slots: make([]binarySlot, 0, o.Capacity),
		less:  ordering(less, o),
	}
}

// NewBinaryOrdered returns an empty binary heap using the natural ordering of T.
func NewBinaryOrdered[T cmp.Ordered](opts ...Option) *Binary[T] {
	return NewBinary(cmp.Less[T], opts...)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Binary[T]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of elements.
func (h *Binary[T]) Len() int { return len(h.items) }

// Insert adds v in O(log n).
func (h *Binary[T]) Insert(v T) Peer {
	p := h.alloc()
	i := len(h.items)
	h.items = append(h.items, binaryEntry[T]{value: v, slot: p.slot})
	h.slots[p.slot].pos = i
	h.up(i)

	return p
}

// InsertAll appends every value and re-heapifies bottom-up in O(n + k).
func (h *Binary[T]) InsertAll(vs ...T) []Peer {
	peers := make([]Peer, len(vs))
	for k, v := range vs {
		p := h.alloc()
		h.slots[p.slot].pos = len(h.items)
		h.items = append(h.items, binaryEntry[T]{value: v, slot: p.slot})
		peers[k] = p
	}
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}

	return peers
}

// Clear drops every element and invalidates all peers.
func (h *Binary[T]) Clear() {
	for _, e := range h.items {
		h.release(e.slot)
	}
	clear(h.items)
	h.items = h.items[:0]
}

// Peek returns the top element.
func (h *Binary[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.items[0].value, nil
}

// ExtractTop moves the last element into the root slot and percolates it down.
func (h *Binary[T]) ExtractTop() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	n := len(h.items) - 1
	top := h.items[0]
	h.swap(0, n)
	h.items[n] = binaryEntry[T]{}
	h.items = h.items[:n]
	h.down(0, n)
	h.release(top.slot)

	return top.value, nil
}

// Update replaces p's value with v and percolates it up.
func (h *Binary[T]) Update(p Peer, v T) error {
	if !h.Contains(p) {
		return ErrStalePeer
	}
	i := h.slots[p.slot].pos
	if h.less(h.items[i].value, v) {
		return ErrInvalidDecreaseKey
	}
	h.items[i].value = v
	h.up(i)

	return nil
}

// Contains reports whether p refers to a live element of h.
func (h *Binary[T]) Contains(p Peer) bool {
	if p.slot < 0 || int(p.slot) >= len(h.slots) {
		return false
	}
	s := h.slots[p.slot]

	return s.gen == p.gen && s.pos >= 0
}

// alloc hands out a slot, reusing freed ones first.
func (h *Binary[T]) alloc() Peer {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]

		return Peer{slot: slot, gen: h.slots[slot].gen}
	}
	h.slots = append(h.slots, binarySlot{pos: -1, gen: 1})

	return Peer{slot: int32(len(h.slots) - 1), gen: 1}
}

// release retires a slot; bumping gen makes any outstanding Peer stale.
func (h *Binary[T]) release(slot int32) {
	h.slots[slot].gen++
	h.slots[slot].pos = -1
	h.free = append(h.free, slot)
}

func (h *Binary[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slots[h.items[i].slot].pos = i
	h.slots[h.items[j].slot].pos = j
}

func (h *Binary[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.items[j].value, h.items[i].value) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Binary[T]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2].value, h.items[j1].value) {
			j = j2 // right child
		}
		if !h.less(h.items[j].value, h.items[i].value) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
