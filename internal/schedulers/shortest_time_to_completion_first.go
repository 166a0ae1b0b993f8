package schedulers

import (
	"cmp"

	"github.com/addrummond/heap"
	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/internal/core"
)

// readyTask orders the STCF ready set by remaining time, then by id.
type readyTask struct {
	remaining int
	id        int
	task      *core.Task
}

func (a *readyTask) Cmp(b *readyTask) int {
	if c := cmp.Compare(a.remaining, b.remaining); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// ScheduleShortestTimeToCompletionFirst is preemptive shortest-remaining-time.
// At every time unit the arrived process with the least remaining burst runs,
// ties going to the smallest id. Since only the running process changes its
// remaining time, the choice is re-evaluated at arrival and completion events
// only, which gives the same schedule as stepping one unit at a time.
// One record is emitted per process, in completion order.
func ScheduleShortestTimeToCompletionFirst(processes []core.Process) (*core.Schedule, error) {
	tasks, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Infof("running stcf algorithm on %d processes", len(tasks))

	cpu := core.NewCPU()
	pending := newArrivals(tasks)
	var ready heap.Heap[readyTask, heap.Min]
	push := func(t *core.Task) {
		heap.PushOrderable(&ready, readyTask{remaining: t.Remaining, id: t.ID, task: t})
	}

	records := make([]core.ScheduledProcess, 0, len(tasks))
	var running *core.Task
	for len(records) < len(tasks) {
		pending.admit(cpu.Clock(), push)
		next, ok := heap.PopOrderable(&ready)
		if !ok {
			at, _ := pending.next()
			cpu.IdleUntil(at)
			continue
		}

		task := next.task
		run := task.Remaining
		if at, ok := pending.next(); ok && at-cpu.Clock() < run {
			run = at - cpu.Clock() // preemption point
		}
		if task == running {
			cpu.Continue(task, run)
		} else {
			cpu.Execute(task, run)
		}
		running = task

		if task.Done() {
			logrus.Debugf("pid: %d completed at %d", task.ID, task.FinishTime)
			records = append(records, task.Record(task.StartTime, task.FinishTime))
			running = nil
			continue
		}
		push(task)
	}

	return &core.Schedule{
		Records:  records,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}, nil
}
