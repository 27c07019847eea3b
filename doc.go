// Package pq implements a generic priority queue backed by a binary heap.
// Each entry pairs a caller-supplied value with a numeric priority, and the
// heap's ordering mode — min-first or max-first — can be switched at runtime
// with a single O(n) reorder instead of re-inserting every entry.
//
// The heap is an array-backed implicit binary tree: the entry at index i has
// children at 2i+1 and 2i+2 and its parent at (i-1)/2. No node graph is
// allocated; all movement is index arithmetic over one growable slice.
//
// Key features:
//   - Generic implementation supporting any value type and any integer or
//     floating-point priority type
//   - O(log n) Enqueue and Dequeue, O(1) Peek
//   - Runtime min/max mode switching with O(n) reordering
//   - Non-destructive snapshot iteration in priority order (All)
//   - Lazy destructive extraction (Drain) and bulk sorted extraction
//     (DrainFast)
//
// Basic usage:
//
//	q := pq.New[string, int]()
//
//	q.Enqueue("low", 3)
//	q.Enqueue("high", 1)
//	q.Enqueue("medium", 2)
//
//	for v := range q.Drain() {
//	    fmt.Println(v) // high, medium, low
//	}
//
// Dequeue and Peek report an empty heap through their second return value
// rather than an error; an empty heap is an ordinary state, not a fault.
//
// A Heap is not safe for concurrent use. It is owned by a single caller and
// any sharing across goroutines must be serialized externally.
package pq
