package schedulers

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/internal/core"
)

// ScheduleRoundRobin cycles through a FIFO ready queue giving each process at
// most timeQuantum units per dispatch. Processes join the queue as they
// arrive; a preempted process goes to the tail after any process that arrived
// while it ran. One record is emitted per slice.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (*core.Schedule, error) {
	if timeQuantum < 1 {
		return nil, fmt.Errorf("%w: time quantum %d, want at least 1", core.ErrInvalidInput, timeQuantum)
	}
	tasks, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Infof("running roundRobin algorithm with timeQuantum = %d on %d processes", timeQuantum, len(tasks))

	cpu := core.NewCPU()
	pending := newArrivals(tasks)
	var roundRobinQueue deque.Deque[*core.Task]

	records := make([]core.ScheduledProcess, 0, len(tasks))
	for {
		pending.admit(cpu.Clock(), roundRobinQueue.PushBack)
		if roundRobinQueue.Len() == 0 {
			at, ok := pending.next()
			if !ok {
				break
			}
			cpu.IdleUntil(at)
			continue
		}

		task := roundRobinQueue.PopFront()
		records = append(records, cpu.Execute(task, min(task.Remaining, timeQuantum)))
		if task.Done() {
			continue
		}
		pending.admit(cpu.Clock(), roundRobinQueue.PushBack)
		logrus.Debugf("pid: %d context switch detected. send process to roundRobin queue", task.ID)
		roundRobinQueue.PushBack(task)
	}

	return &core.Schedule{
		Records:  records,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}, nil
}
