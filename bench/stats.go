package bench

import (
	"slices"
)

// Stats summarizes one benchmark cell's trial samples.
type Stats struct {
	Mean float64
	P25  float64
	P75  float64
}

// Compute returns the mean and the 25th/75th percentiles of the samples.
// Percentiles use linear interpolation between the two nearest ranks.
// An empty sample set yields zero stats.
func Compute(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var sum float64
	for _, s := range sorted {
		sum += s
	}

	return Stats{
		Mean: sum / float64(len(sorted)),
		P25:  percentile(sorted, 0.25),
		P75:  percentile(sorted, 0.75),
	}
}

// percentile expects sorted input.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
