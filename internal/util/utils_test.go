package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduling-simulator/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	details := []core.ScheduledProcess{
		{Process: core.Process{ID: 1, Arrival: 0, Burst: 3}, StartTime: 0, FinishTime: 3, Waiting: 0},
		{Process: core.Process{ID: 2, Arrival: 1, Burst: 2}, StartTime: 3, FinishTime: 5, Waiting: 2},
	}

	waiting, response, turnaround := CalculateAverage(details)

	assert.Equal(t, 1.0, waiting)
	assert.Equal(t, 1.0, response)
	assert.Equal(t, 3.5, turnaround)
	assert.Equal(t, 2, TotalWaiting(details))
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
