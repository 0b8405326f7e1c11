package bench

import (
	"context"
	"math"
	"time"
)

const (
	batchSize  = 1024
	minBatches = 5
	// z-score for a 95% confidence interval
	confidenceZ = 1.96
)

type Stats struct {
	Ops     float64 // calls per second
	RME     float64 // relative margin of error, in percent
	Calls   int
	Elapsed time.Duration
}

// Measure calls fn in batches until d has elapsed and at least minBatches ran.
func Measure(ctx context.Context, fn func(), d time.Duration) (Stats, error) {
	var (
		samples []float64
		elapsed time.Duration
	)
	for elapsed < d || len(samples) < minBatches {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}

		start := time.Now()
		for i := 0; i < batchSize; i++ {
			fn()
		}
		took := time.Since(start)

		elapsed += took
		samples = append(samples, float64(took))
	}

	calls := len(samples) * batchSize
	stats := Stats{
		RME:     rme(samples),
		Calls:   calls,
		Elapsed: elapsed,
	}
	if elapsed > 0 {
		stats.Ops = float64(calls) / elapsed.Seconds()
	}
	return stats, nil
}

func rme(samples []float64) float64 {
	n := float64(len(samples))
	if n < 2 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / n
	if mean == 0 {
		return 0
	}

	var sq float64
	for _, s := range samples {
		sq += (s - mean) * (s - mean)
	}
	sem := math.Sqrt(sq/(n-1)) / math.Sqrt(n)
	return sem * confidenceZ / mean * 100
}
