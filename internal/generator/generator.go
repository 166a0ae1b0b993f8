// Package generator produces random process batches for the simulator.
package generator

import (
	"fmt"
	"math/rand"

	"cpu-scheduling-simulator/internal/core"
)

const (
	// MaxArrival is the exclusive upper bound of generated arrival times.
	MaxArrival = 10
	// MaxBurst is the inclusive upper bound of generated bursts.
	MaxBurst = 10
	// MaxCount is the largest batch Generate produces.
	MaxCount = 10000
)

// Generate returns count processes with ids 1..count, arrival uniform in
// [0, MaxArrival) and burst uniform in [1, MaxBurst]. The same seed always
// yields the same batch. count must lie in [0, MaxCount].
func Generate(count int, rng *rand.Rand) ([]core.Process, error) {
	if count < 0 || count > MaxCount {
		return nil, fmt.Errorf("%w: process count %d, want 0..%d", core.ErrInvalidInput, count, MaxCount)
	}
	processes := make([]core.Process, count)
	for i := range processes {
		processes[i] = core.Process{
			ID:      i + 1,
			Arrival: rng.Intn(MaxArrival),
			Burst:   rng.Intn(MaxBurst) + 1,
		}
	}
	return processes, nil
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
