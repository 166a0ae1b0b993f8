package schedulers

import (
	"sort"

	"cpu-scheduling-simulator/internal/core"
)

// arrivals releases tasks into a policy's ready structure as the clock passes
// their arrival time. Tasks with equal arrival are released in input order.
type arrivals struct {
	pending []*core.Task
}

func newArrivals(tasks []*core.Task) *arrivals {
	pending := make([]*core.Task, len(tasks))
	copy(pending, tasks)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Arrival < pending[j].Arrival
	})
	return &arrivals{pending: pending}
}

// admit hands every task with arrival <= clock to ready.
func (a *arrivals) admit(clock int, ready func(*core.Task)) {
	for len(a.pending) > 0 && a.pending[0].Arrival <= clock {
		ready(a.pending[0])
		a.pending = a.pending[1:]
	}
}

// next returns the earliest arrival still pending.
func (a *arrivals) next() (int, bool) {
	if len(a.pending) == 0 {
		return 0, false
	}
	return a.pending[0].Arrival, true
}
