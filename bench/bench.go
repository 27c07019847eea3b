// Package bench measures this module's heap against alternative queue
// implementations and reports per-operation timing and memory statistics.
// The output feeds the plotting script in benchmark/: one CSV row per
// (operation, queueType, heapSize) cell, carrying the mean and the
// 25th/75th percentiles over a configurable number of trials.
//
// The harness only drives the public queue API. It never inspects heap
// layout, so contenders are freely interchangeable.
package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"
)

// Operation identifies a benchmarked code path.
type Operation string

const (
	OpEnqueue Operation = "enqueue"
	OpDequeue Operation = "dequeue"
	OpDrain   Operation = "drain"
	OpMemory  Operation = "memory"
)

// Operations lists every benchmarked operation in output order.
var Operations = []Operation{OpEnqueue, OpDequeue, OpDrain, OpMemory}

// Result is one benchmark cell: an operation on one queue type at one
// heap size, with aggregated trial statistics. Timing cells are in
// milliseconds; the memory cell is in megabytes.
type Result struct {
	Operation Operation
	QueueType string
	HeapSize  int
	Stats     Stats
}

// Runner executes the benchmark grid.
type Runner struct {
	Sizes  []int
	Trials int
	Seed   int64

	// Progress, when set, is called after each completed cell.
	Progress func(Result)
}

// Run benchmarks every contender across all configured operations and
// heap sizes. Results are ordered by operation, then contender, then
// size, matching the CSV layout the plots expect.
func (r *Runner) Run(contenders []Factory) ([]Result, error) {
	if len(r.Sizes) == 0 {
		return nil, fmt.Errorf("bench: no heap sizes configured")
	}
	if r.Trials <= 0 {
		return nil, fmt.Errorf("bench: trials must be positive, got %d", r.Trials)
	}

	var results []Result
	for _, op := range Operations {
		for _, c := range contenders {
			for _, size := range r.Sizes {
				// Every cell reseeds so contenders see identical workloads.
				rng := rand.New(rand.NewSource(r.Seed))

				samples := make([]float64, r.Trials)
				for trial := 0; trial < r.Trials; trial++ {
					samples[trial] = r.runTrial(op, c, size, rng)
				}

				res := Result{
					Operation: op,
					QueueType: c.Name,
					HeapSize:  size,
					Stats:     Compute(samples),
				}
				results = append(results, res)
				if r.Progress != nil {
					r.Progress(res)
				}
			}
		}
	}
	return results, nil
}

func (r *Runner) runTrial(op Operation, c Factory, size int, rng *rand.Rand) float64 {
	priorities := make([]float64, size)
	for i := range priorities {
		priorities[i] = rng.Float64() * float64(size)
	}

	switch op {
	case OpEnqueue:
		q := c.New()
		start := time.Now()
		for i, p := range priorities {
			q.Enqueue(i, p)
		}
		return millis(time.Since(start))

	case OpDequeue:
		q := preload(c, priorities)
		start := time.Now()
		for {
			if _, ok := q.Dequeue(); !ok {
				break
			}
		}
		return millis(time.Since(start))

	case OpDrain:
		q := preload(c, priorities)
		start := time.Now()
		_ = q.Drain()
		return millis(time.Since(start))

	case OpMemory:
		runtime.GC()
		var before runtime.MemStats
		runtime.ReadMemStats(&before)

		q := preload(c, priorities)

		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		runtime.KeepAlive(q)
		if after.HeapAlloc < before.HeapAlloc {
			// A collection ran mid-trial; report nothing rather than garbage.
			return 0
		}
		return float64(after.HeapAlloc-before.HeapAlloc) / (1 << 20)

	default:
		return 0
	}
}

func preload(c Factory, priorities []float64) Queue {
	q := c.New()
	for i, p := range priorities {
		q.Enqueue(i, p)
	}
	return q
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
