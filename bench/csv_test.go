package bench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{
			Operation: OpEnqueue,
			QueueType: "priority",
			HeapSize:  1000,
			Stats:     Stats{Mean: 1.5, P25: 1.25, P75: 1.75},
		},
		{
			Operation: OpMemory,
			QueueType: "gods",
			HeapSize:  10000,
			Stats:     Stats{Mean: 0.5, P25: 0.5, P75: 0.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	want := "operation,queueType,heapSize,mean,p25,p75\n" +
		"enqueue,priority,1000,1.500000,1.250000,1.750000\n" +
		"memory,gods,10000,0.500000,0.500000,0.500000\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "operation,queueType,heapSize,mean,p25,p75\n", buf.String())
}
