package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a process batch or a policy parameter
// cannot be simulated. Callers check for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Process is one entry of the input batch.
type Process struct {
	ID      int
	Arrival int
	Burst   int
}

// ScheduledProcess is an output record. For preemptive policies that report
// per-slice records, StartTime and FinishTime bound the slice and Remaining is
// the burst left after it.
type ScheduledProcess struct {
	Process
	StartTime  int
	FinishTime int
	Waiting    int
	Remaining  int
	Level      int
}

// Turnaround is the time from arrival to completion.
func (p ScheduledProcess) Turnaround() int {
	return p.FinishTime - p.Arrival
}

// Task is the mutable working copy of a Process owned by a single run.
type Task struct {
	Process
	Remaining  int
	StartTime  int // -1 until first dispatch
	FinishTime int
	Waited     int
	Level      int

	readySince int
}

// Done reports whether the task has consumed its whole burst.
func (t *Task) Done() bool {
	return t.Remaining == 0
}

// Record snapshots the task as an output record bounded by [start, finish).
func (t *Task) Record(start, finish int) ScheduledProcess {
	return ScheduledProcess{
		Process:    t.Process,
		StartTime:  start,
		FinishTime: finish,
		Waiting:    t.Waited,
		Remaining:  t.Remaining,
		Level:      t.Level,
	}
}

// Clone builds a working copy of processes. The input slice is left untouched
// so several policies can run over the same batch at once.
func Clone(processes []Process) []*Task {
	tasks := make([]*Task, len(processes))
	for i, p := range processes {
		tasks[i] = &Task{
			Process:    p,
			Remaining:  p.Burst,
			StartTime:  -1,
			readySince: p.Arrival,
		}
	}
	return tasks
}

// Validate rejects batches the engine cannot simulate: duplicate or
// non-positive ids, negative arrivals, bursts below one and batches whose
// latest arrival plus total burst does not fit the clock.
func Validate(processes []Process) error {
	seen := make(map[int]struct{}, len(processes))
	latestArrival, totalBurst := 0, 0
	for _, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: process id %d must be positive", ErrInvalidInput, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %d has negative arrival %d", ErrInvalidInput, p.ID, p.Arrival)
		}
		if p.Burst < 1 {
			return fmt.Errorf("%w: process %d has burst %d, want at least 1", ErrInvalidInput, p.ID, p.Burst)
		}
		if p.Burst > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: total burst overflows the clock at process %d", ErrInvalidInput, p.ID)
		}
		totalBurst += p.Burst
		latestArrival = max(latestArrival, p.Arrival)
	}
	// The clock never passes latestArrival+totalBurst.
	if latestArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: arrival %d plus total burst %d overflows the clock", ErrInvalidInput, latestArrival, totalBurst)
	}
	return nil
}
