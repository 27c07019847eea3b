package bench

import (
	pq "github.com/Himenon/priority-queue"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
)

// Queue is the surface the benchmark drives. Contenders sit behind it as
// pure consumers of their own public API; the runner never observes queue
// internals.
type Queue interface {
	Enqueue(value int, priority float64)
	Dequeue() (int, bool)
	Drain() []int
	Len() int
}

// Factory names a contender and builds fresh instances of it.
type Factory struct {
	Name string
	New  func() Queue
}

// Contenders returns the queue implementations the benchmark compares:
// this module's heap, a gods binary heap, and a B-tree used as an ordered
// queue.
func Contenders() []Factory {
	return []Factory{
		{Name: "priority", New: newHeapQueue},
		{Name: "gods", New: newGodsQueue},
		{Name: "btree", New: newBTreeQueue},
	}
}

// heapQueue adapts pq.Heap. Drain uses the bulk path.
type heapQueue struct {
	h *pq.Heap[int, float64]
}

func newHeapQueue() Queue {
	return &heapQueue{h: pq.New[int, float64]()}
}

func (q *heapQueue) Enqueue(value int, priority float64) { q.h.Enqueue(value, priority) }
func (q *heapQueue) Dequeue() (int, bool)                { return q.h.Dequeue() }
func (q *heapQueue) Drain() []int                        { return q.h.DrainFast() }
func (q *heapQueue) Len() int                            { return q.h.Len() }

type godsEntry struct {
	value    int
	priority float64
}

// godsQueue adapts the gods binary heap.
type godsQueue struct {
	h *binaryheap.Heap
}

func newGodsQueue() Queue {
	return &godsQueue{
		h: binaryheap.NewWith(func(a, b interface{}) int {
			return utils.Float64Comparator(a.(godsEntry).priority, b.(godsEntry).priority)
		}),
	}
}

func (q *godsQueue) Enqueue(value int, priority float64) {
	q.h.Push(godsEntry{value: value, priority: priority})
}

func (q *godsQueue) Dequeue() (int, bool) {
	e, ok := q.h.Pop()
	if !ok {
		return 0, false
	}
	return e.(godsEntry).value, true
}

func (q *godsQueue) Drain() []int {
	values := make([]int, 0, q.h.Size())
	for {
		v, ok := q.Dequeue()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

func (q *godsQueue) Len() int { return q.h.Size() }

type btreeItem struct {
	priority float64
	seq      uint64 // disambiguates equal priorities; the tree keeps one item per key
	value    int
}

// btreeQueue adapts a B-tree ordered by (priority, insertion sequence).
type btreeQueue struct {
	t   *btree.BTreeG[btreeItem]
	seq uint64
}

func newBTreeQueue() Queue {
	return &btreeQueue{
		t: btree.NewG(32, func(a, b btreeItem) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

func (q *btreeQueue) Enqueue(value int, priority float64) {
	q.seq++
	q.t.ReplaceOrInsert(btreeItem{priority: priority, seq: q.seq, value: value})
}

func (q *btreeQueue) Dequeue() (int, bool) {
	item, ok := q.t.DeleteMin()
	if !ok {
		return 0, false
	}
	return item.value, true
}

func (q *btreeQueue) Drain() []int {
	values := make([]int, 0, q.t.Len())
	for {
		v, ok := q.Dequeue()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

func (q *btreeQueue) Len() int { return q.t.Len() }
