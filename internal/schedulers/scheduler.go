package schedulers

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cpu-scheduling-simulator/internal/core"
)

// ErrUnknownAlgorithm is returned for an algorithm name that is not one of
// the five supported policies.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type Algorithm string

const (
	FirstComeFirstServe           Algorithm = "fifo"
	ShortestJobFirst              Algorithm = "sjf"
	ShortestTimeToCompletionFirst Algorithm = "stcf"
	RoundRobin                    Algorithm = "rr"
	MultilevelFeedbackQueue       Algorithm = "mlfq"
)

// Algorithms lists every policy in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestTimeToCompletionFirst,
	RoundRobin,
	MultilevelFeedbackQueue,
}

// Title is the human readable policy name.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-In-First-Out"
	case ShortestJobFirst:
		return "Shortest-Job-First"
	case ShortestTimeToCompletionFirst:
		return "Shortest-Time-to-Completion-First"
	case RoundRobin:
		return "Round-Robin"
	case MultilevelFeedbackQueue:
		return "Multi-Level-Feedback-Queue"
	}
	return string(a)
}

// ParseAlgorithm accepts the policy names case-insensitively; "fcfs" is an
// alias for "fifo".
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "fcfs" {
		return FirstComeFirstServe, nil
	}
	for _, a := range Algorithms {
		if string(a) == n {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ParseAlgorithms parses every name; an empty list selects all policies.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return slices.Clone(Algorithms), nil
	}
	algs := make([]Algorithm, 0, len(names))
	for _, name := range names {
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

// Options carries the policy parameters. TimeQuantum is used by RR;
// LevelsTimeQuantum by MLFQ (empty selects DefaultLevelsTimeQuantum).
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// Schedule runs a single policy.
func Schedule(alg Algorithm, processes []core.Process, opts Options) (*core.Schedule, error) {
	switch alg {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestTimeToCompletionFirst:
		return ScheduleShortestTimeToCompletionFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// ScheduleAll runs the given policies concurrently over the same batch. Each
// policy works on its own copy of processes. Results come back in the order
// of algs; the first failing policy in that order decides the error.
func ScheduleAll(processes []core.Process, algs []Algorithm, opts Options) ([]*core.Schedule, error) {
	results := make([]*core.Schedule, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	wg.Add(len(algs))
	for i, alg := range algs {
		i, alg := i, alg
		go func() {
			defer wg.Done()
			results[i], errs[i] = Schedule(alg, processes, opts)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algs[i], err)
		}
	}
	return results, nil
}

// prepare validates processes and returns the working copy a policy may
// mutate freely.
func prepare(processes []core.Process) ([]*core.Task, error) {
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	return core.Clone(processes), nil
}
