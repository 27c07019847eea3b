package pq

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of priority types the heap orders by: any built-in
// integer or floating-point type. NaN priorities are not validated and
// leave the ordering undefined.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry pairs a caller-supplied value with its numeric priority. Entries
// are copied into the heap on Enqueue and never mutated afterwards; only
// their position in the backing slice changes.
type Entry[V any, P Number] struct {
	Value    V
	Priority P
}

// Heap is a binary heap ordered by entry priority. The ordering mode
// (min-first or max-first) is chosen at construction and may be switched
// at any time with SetMinHeap/SetMaxHeap.
//
// The zero value is not usable; create heaps with New or NewMax. A Heap
// must not be accessed from multiple goroutines without external
// synchronization.
type Heap[V any, P Number] struct {
	entries []Entry[V, P]
	min     bool // true: lower priority wins; false: higher priority wins
}

// New creates an empty min-first heap: entries with lower priority are
// dequeued first.
func New[V any, P Number]() *Heap[V, P] {
	return &Heap[V, P]{min: true}
}

// NewMax creates an empty max-first heap: entries with higher priority are
// dequeued first.
func NewMax[V any, P Number]() *Heap[V, P] {
	return &Heap[V, P]{min: false}
}

// Len returns the number of entries in the heap.
func (h *Heap[V, P]) Len() int {
	return len(h.entries)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[V, P]) IsEmpty() bool {
	return len(h.entries) == 0
}

// Enqueue adds a value with the given priority. Duplicate values and
// duplicate priorities are allowed.
func (h *Heap[V, P]) Enqueue(value V, priority P) {
	h.entries = append(h.entries, Entry[V, P]{Value: value, Priority: priority})
	h.up(len(h.entries) - 1)
}

// Dequeue removes and returns the value with the best priority under the
// current mode. The second return is false when the heap is empty.
func (h *Heap[V, P]) Dequeue() (V, bool) {
	if len(h.entries) == 0 {
		var zero V
		return zero, false
	}

	root := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	if last > 0 {
		h.down(0)
	}
	return root.Value, true
}

// Peek returns the value with the best priority without removing it. The
// second return is false when the heap is empty.
func (h *Heap[V, P]) Peek() (V, bool) {
	if len(h.entries) == 0 {
		var zero V
		return zero, false
	}
	return h.entries[0].Value, true
}

// SetMinHeap switches the heap to min-first ordering. If the heap is
// already min-first this is a no-op; otherwise every entry is reordered
// in a single O(n) bottom-up pass.
func (h *Heap[V, P]) SetMinHeap() {
	h.setMode(true)
}

// SetMaxHeap switches the heap to max-first ordering. If the heap is
// already max-first this is a no-op; otherwise every entry is reordered
// in a single O(n) bottom-up pass.
func (h *Heap[V, P]) SetMaxHeap() {
	h.setMode(false)
}

func (h *Heap[V, P]) setMode(min bool) {
	if h.min == min {
		return
	}
	h.min = min
	// Sifting down from the last non-leaf index to the root restores the
	// invariant in O(n), versus O(n log n) for re-inserting every entry.
	for i := len(h.entries)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// All returns a non-destructive snapshot of the heap's values in priority
// order. Each range over the sequence clones the backing slice and drains
// the clone, so the heap itself is never mutated and the sequence can be
// ranged over more than once, each time observing the heap as it was when
// the range began.
func (h *Heap[V, P]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		clone := Heap[V, P]{
			entries: slices.Clone(h.entries),
			min:     h.min,
		}
		for {
			v, ok := clone.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Drain returns a destructive sequence of the heap's values in priority
// order. Every element is dequeued from the live heap only when the
// consumer asks for it; breaking out early leaves the unconsumed entries
// in the heap, still ordered under the current mode. After full
// consumption the heap is empty and remains usable.
func (h *Heap[V, P]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := h.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// DrainFast removes every entry and returns the values sorted under the
// current mode in one pass. The output is multiset-equal to fully
// consuming Drain; the relative order of equal-priority entries is
// unspecified in both.
func (h *Heap[V, P]) DrainFast() []V {
	entries := h.entries
	h.entries = nil

	slices.SortFunc(entries, func(a, b Entry[V, P]) int {
		switch {
		case a.Priority < b.Priority:
			if h.min {
				return -1
			}
			return 1
		case a.Priority > b.Priority:
			if h.min {
				return 1
			}
			return -1
		default:
			return 0
		}
	})

	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values
}

// less reports whether the entry at index i beats the entry at index j
// under the current mode.
func (h *Heap[V, P]) less(i, j int) bool {
	if h.min {
		return h.entries[i].Priority < h.entries[j].Priority
	}
	return h.entries[i].Priority > h.entries[j].Priority
}

func (h *Heap[V, P]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// up moves the entry at index i toward the root while it beats its parent.
func (h *Heap[V, P]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i toward the leaves while a child beats
// it, always trading places with the more extreme of the two children.
func (h *Heap[V, P]) down(i int) {
	for {
		best := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.entries) && h.less(left, best) {
			best = left
		}
		if right < len(h.entries) && h.less(right, best) {
			best = right
		}

		if best == i {
			break
		}

		h.swap(i, best)
		i = best
	}
}
