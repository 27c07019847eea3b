package bench

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContendersAgree(t *testing.T) {
	const n = 1000

	rng := rand.New(rand.NewSource(7))
	priorities := make([]float64, n)
	for i := range priorities {
		priorities[i] = float64(rng.Intn(100)) // force ties
	}

	// Every contender must drain the same workload to the same multiset,
	// in the same priority order.
	var reference []float64
	for _, c := range Contenders() {
		q := c.New()
		for i, p := range priorities {
			q.Enqueue(i, p)
		}
		require.Equal(t, n, q.Len(), c.Name)

		values := q.Drain()
		require.Len(t, values, n, c.Name)
		assert.Equal(t, 0, q.Len(), c.Name)

		drained := make([]float64, n)
		seen := make(map[int]bool, n)
		for i, v := range values {
			drained[i] = priorities[v]
			seen[v] = true
		}
		assert.True(t, slices.IsSorted(drained), "%s drained out of order", c.Name)
		assert.Len(t, seen, n, "%s dropped or duplicated values", c.Name)

		if reference == nil {
			reference = drained
		} else {
			assert.Equal(t, reference, drained, "%s priority order differs", c.Name)
		}
	}
}

func TestContendersDequeue(t *testing.T) {
	for _, c := range Contenders() {
		q := c.New()

		_, ok := q.Dequeue()
		assert.False(t, ok, "%s: dequeue on empty queue", c.Name)

		q.Enqueue(42, 2)
		q.Enqueue(7, 1)

		v, ok := q.Dequeue()
		require.True(t, ok, c.Name)
		assert.Equal(t, 7, v, c.Name)

		v, ok = q.Dequeue()
		require.True(t, ok, c.Name)
		assert.Equal(t, 42, v, c.Name)

		_, ok = q.Dequeue()
		assert.False(t, ok, c.Name)
	}
}

func TestRunnerGrid(t *testing.T) {
	r := &Runner{
		Sizes:  []int{10, 100},
		Trials: 2,
		Seed:   1,
	}

	var progressed int
	r.Progress = func(Result) { progressed++ }

	results, err := r.Run(Contenders())
	require.NoError(t, err)

	wantCells := len(Operations) * len(Contenders()) * len(r.Sizes)
	assert.Len(t, results, wantCells)
	assert.Equal(t, wantCells, progressed)

	for _, res := range results {
		assert.NotEmpty(t, res.QueueType)
		assert.Contains(t, Operations, res.Operation)
		assert.GreaterOrEqual(t, res.Stats.P75, res.Stats.P25,
			"%s/%s/%d", res.Operation, res.QueueType, res.HeapSize)
	}
}

func TestRunnerValidation(t *testing.T) {
	_, err := (&Runner{Trials: 3}).Run(Contenders())
	assert.Error(t, err)

	_, err = (&Runner{Sizes: []int{10}}).Run(Contenders())
	assert.Error(t, err)
}
