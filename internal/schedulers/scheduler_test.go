package schedulers

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
)

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"fifo": FirstComeFirstServe,
		"FCFS": FirstComeFirstServe,
		"sjf":  ShortestJobFirst,
		"stcf": ShortestTimeToCompletionFirst,
		" RR ": RoundRobin,
		"mlfq": MultilevelFeedbackQueue,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseAlgorithm("lottery")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestParseAlgorithms_EmptySelectsAll(t *testing.T) {
	algs, err := ParseAlgorithms(nil)
	require.NoError(t, err)
	assert.Equal(t, Algorithms, algs)

	algs, err = ParseAlgorithms([]string{"rr", "fcfs"})
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{RoundRobin, FirstComeFirstServe}, algs)

	_, err = ParseAlgorithms([]string{"rr", "cfs"})
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestSchedule_UnknownAlgorithm(t *testing.T) {
	_, err := Schedule("edf", nil, Options{})
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestScheduleAll_MatchesSequentialRuns(t *testing.T) {
	// GIVEN one batch shared by every policy
	input := []core.Process{
		{ID: 1, Arrival: 0, Burst: 7},
		{ID: 2, Arrival: 2, Burst: 4},
		{ID: 3, Arrival: 4, Burst: 1},
		{ID: 4, Arrival: 5, Burst: 4},
	}
	opts := Options{TimeQuantum: 3}

	// WHEN run concurrently
	results, err := ScheduleAll(input, Algorithms, opts)
	require.NoError(t, err)

	// THEN each result equals the policy run alone, in request order
	require.Len(t, results, len(Algorithms))
	for i, alg := range Algorithms {
		want, err := Schedule(alg, input, opts)
		require.NoError(t, err)
		assert.Equal(t, want, results[i], alg)
	}
}

func TestScheduleAll_ReportsPolicyError(t *testing.T) {
	input := []core.Process{{ID: 1, Arrival: 0, Burst: 2}}

	_, err := ScheduleAll(input, []Algorithm{FirstComeFirstServe, RoundRobin}, Options{TimeQuantum: 0})

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
	assert.Contains(t, err.Error(), "rr")
}

func TestAlgorithm_Title(t *testing.T) {
	assert.Equal(t, "Round-Robin", RoundRobin.Title())
	assert.Equal(t, "Multi-Level-Feedback-Queue", MultilevelFeedbackQueue.Title())
	assert.Equal(t, "custom", Algorithm("custom").Title())
}

func TestSchedule_RejectsClockOverflow(t *testing.T) {
	// GIVEN a process whose arrival plus burst does not fit the clock
	input := []core.Process{{ID: 1, Arrival: math.MaxInt - 2, Burst: 10}}

	for _, alg := range Algorithms {
		// WHEN any policy schedules it
		s, err := Schedule(alg, input, Options{TimeQuantum: 4})

		// THEN it is rejected as invalid input instead of wrapping the clock
		assert.Nil(t, s, alg)
		assert.ErrorIs(t, err, core.ErrInvalidInput, alg)
	}
}
