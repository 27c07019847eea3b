// Command pq-bench benchmarks the priority queue against alternative
// implementations and writes stats.csv for benchmark/plot_stats.py.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Himenon/priority-queue/bench"
	"github.com/fatih/color"
	"github.com/pkg/profile"
)

func main() {
	var (
		sizes      = flag.String("sizes", "1000,10000,100000", "comma-separated heap sizes")
		trials     = flag.Int("trials", 10, "trials per benchmark cell")
		out        = flag.String("out", "stats.csv", "output CSV path")
		seed       = flag.Int64("seed", 1, "workload seed, shared across contenders")
		cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile of the run")
	)
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	heapSizes, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pq-bench: %v\n", err)
		os.Exit(1)
	}

	runner := &bench.Runner{
		Sizes:  heapSizes,
		Trials: *trials,
		Seed:   *seed,
		Progress: func(r bench.Result) {
			fmt.Printf("%s %s n=%d mean=%.3f p25=%.3f p75=%.3f\n",
				color.CyanString("%-8s", string(r.Operation)),
				color.YellowString("%-8s", r.QueueType),
				r.HeapSize, r.Stats.Mean, r.Stats.P25, r.Stats.P75)
		},
	}

	results, err := runner.Run(bench.Contenders())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pq-bench: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pq-bench: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := bench.WriteCSV(f, results); err != nil {
		fmt.Fprintf(os.Stderr, "pq-bench: %v\n", err)
		os.Exit(1)
	}

	color.Green("wrote %d cells to %s", len(results), *out)
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid heap size %q", part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no heap sizes given")
	}
	return sizes, nil
}
