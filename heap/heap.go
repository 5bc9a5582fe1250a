// Package heap defines the priority-queue contract shared by the binary and
// Fibonacci implementations, the Peer handle used for decrease-key, ordering
// options and the Kind factory used by traversals to pick a backend.
package heap

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by heap operations.
var (
	// ErrEmptyHeap indicates ExtractTop or Peek was called on a heap with no elements.
	// The heap stays usable afterwards.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrInvalidDecreaseKey indicates Update was asked to move an element away from
	// the top (a larger value for a min-heap, a smaller one for a max-heap).
	ErrInvalidDecreaseKey = errors.New("heap: update does not decrease key")

	// ErrStalePeer indicates the Peer no longer refers to a live element:
	// the element was extracted, or the heap was cleared.
	ErrStalePeer = errors.New("heap: stale peer")

	// ErrUnknownKind indicates an unrecognized heap Kind was requested.
	ErrUnknownKind = errors.New("heap: unknown heap kind")
)

// Heap is a priority queue with handle-based decrease-key.
//
// The "top" is the minimum element under the heap's ordering (or the maximum
// when the heap was built with WithMax). Ties are broken arbitrarily.
//
// Implementations are not safe for concurrent use.
type Heap[T any] interface {
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Len returns the number of elements currently stored.
	Len() int

	// Insert adds v and returns a Peer that stays valid until v is extracted.
	Insert(v T) Peer

	// InsertAll inserts every value and returns their peers in argument order.
	// It is equivalent to repeated Insert; implementations may batch the work.
	InsertAll(vs ...T) []Peer

	// Clear removes all elements. Every outstanding Peer becomes stale.
	Clear()

	// Peek returns the top element without removing it.
	Peek() (T, error)

	// ExtractTop removes and returns the top element, invalidating its Peer.
	ExtractTop() (T, error)

	// Update replaces the value referenced by p with v and restores heap order.
	//
	// Precondition: v must not order after the current value (decrease-key for a
	// min-heap, increase-key for a max-heap); otherwise ErrInvalidDecreaseKey is
	// returned and the heap is left untouched. A stale p yields ErrStalePeer.
	Update(p Peer, v T) error

	// Contains reports whether p still refers to a live element.
	Contains(p Peer) bool
}

// Peer is an opaque, stable handle to an inserted element.
//
// It is a generational index into the heap's internal arena: extraction bumps
// the slot generation, so an old Peer is detected as stale in O(1).
// The zero Peer is never valid.
type Peer struct {
	slot int32
	gen  uint32
}

// IsZero reports whether p is the zero Peer.
func (p Peer) IsZero() bool { return p.gen == 0 }

// String renders the handle for logs.
func (p Peer) String() string { return fmt.Sprintf("peer(%d#%d)", p.slot, p.gen) }

// Options configures heap construction.
type Options struct {
	// Max selects a max-heap: comparisons are negated, the top is the maximum.
	Max bool

	// Capacity pre-sizes the internal arena.
	Capacity int
}

// Option configures Options.
type Option func(*Options)

// WithMax builds a max-heap instead of the default min-heap.
func WithMax() Option {
	return func(o *Options) { o.Max = true }
}

// WithCapacity pre-allocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns a min-heap with no pre-allocation.
func DefaultOptions() Options {
	return Options{Max: false, Capacity: 0}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ordering returns the effective strict-weak-order predicate.
// A max-heap negates the caller's comparison by swapping its operands.
func ordering[T any](less func(a, b T) bool, o Options) func(a, b T) bool {
	if less == nil {
		panic("heap: nil less function")
	}
	if o.Max {
		return func(a, b T) bool { return less(b, a) }
	}

	return less
}

// Kind selects a Heap implementation.
type Kind int

const (
	// KindBinary is the array-backed binary heap: O(log n) insert, extract and update.
	KindBinary Kind = iota

	// KindFibonacci is the pointer-free Fibonacci heap: amortized O(1) insert and
	// decrease-key, amortized O(log n) extract.
	KindFibonacci
)

// String returns the lowercase name of k.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindFibonacci:
		return "fibonacci"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "binary" / "fibonacci" (case-insensitive, "fib" accepted) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin":
		return KindBinary, nil
	case "fibonacci", "fib":
		return KindFibonacci, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New builds an empty heap of the requested kind ordered by less.
func New[T any](kind Kind, less func(a, b T) bool, opts ...Option) (Heap[T], error) {
	switch kind {
	case KindBinary:
		return NewBinary(less, opts...), nil
	case KindFibonacci:
		return NewFibonacci(less, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// NewOrdered builds an empty heap of the requested kind using the natural
// ordering of T.
func NewOrdered[T cmp.Ordered](kind Kind, opts ...Option) (Heap[T], error) {
	return New(kind, cmp.Less[T], opts...)
}
