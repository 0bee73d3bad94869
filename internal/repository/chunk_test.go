package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	rows := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	tests := []struct {
		name            string
		rows            int
		size            int
		expectedBatches int
	}{
		{name: "empty input", rows: 0, size: 500, expectedBatches: 0},
		{name: "single partial batch", rows: 3, size: 500, expectedBatches: 1},
		{name: "exactly one batch", rows: 500, size: 500, expectedBatches: 1},
		{name: "one over the boundary", rows: 501, size: 500, expectedBatches: 2},
		{name: "exactly two batches", rows: 2000, size: 1000, expectedBatches: 2},
		{name: "one over two batches", rows: 2001, size: 1000, expectedBatches: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := chunk(rows(tt.rows), tt.size)
			assert.Len(t, batches, tt.expectedBatches)

			total := 0
			for i, batch := range batches {
				if i < len(batches)-1 {
					assert.Len(t, batch, tt.size)
				}
				total += len(batch)
			}
			assert.Equal(t, tt.rows, total)
		})
	}
}
