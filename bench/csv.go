package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader matches what benchmark/plot_stats.py reads.
var csvHeader = []string{"operation", "queueType", "heapSize", "mean", "p25", "p75"}

// WriteCSV writes results as stats.csv rows, one per benchmark cell.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: writing csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			string(r.Operation),
			r.QueueType,
			strconv.Itoa(r.HeapSize),
			formatFloat(r.Stats.Mean),
			formatFloat(r.Stats.P25),
			formatFloat(r.Stats.P75),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: writing csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench: flushing csv: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
