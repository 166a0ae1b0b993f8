package schedulers

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/internal/core"
)

// DefaultLevelsTimeQuantum is the three level ladder: 4 and 8 unit slices
// followed by a run-to-completion level. Zero means unbounded.
var DefaultLevelsTimeQuantum = []int{4, 8, 0}

type feedbackLevel struct {
	priority    int
	timeQuantum int // 0 is unbounded
	queue       deque.Deque[*core.Task]
}

func (l *feedbackLevel) slice(remaining int) int {
	if l.timeQuantum == 0 {
		return remaining
	}
	return min(remaining, l.timeQuantum)
}

// ScheduleMultilevelFeedbackQueue dispatches from the highest priority
// non-empty level. Processes enter level 0 on arrival and move one level down
// each time they use up a slice without finishing; the lowest level keeps
// them. Demoted processes are never promoted back. One record is emitted per
// slice, tagged with the level it ran at. An empty timeQuantumList selects
// DefaultLevelsTimeQuantum.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int) (*core.Schedule, error) {
	if len(timeQuantumList) == 0 {
		timeQuantumList = DefaultLevelsTimeQuantum
	}
	if err := validateLevels(timeQuantumList); err != nil {
		return nil, err
	}
	tasks, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Infof("running mlfq algorithm with timeQuantum = %v on %d processes", timeQuantumList, len(tasks))

	levels := make([]*feedbackLevel, len(timeQuantumList))
	for i, q := range timeQuantumList {
		levels[i] = &feedbackLevel{priority: i, timeQuantum: q}
	}
	enter := func(t *core.Task) {
		t.Level = 0
		levels[0].queue.PushBack(t)
	}

	cpu := core.NewCPU()
	pending := newArrivals(tasks)
	records := make([]core.ScheduledProcess, 0, len(tasks))
	for {
		pending.admit(cpu.Clock(), enter)
		level := highestNonEmpty(levels)
		if level == nil {
			at, ok := pending.next()
			if !ok {
				break
			}
			cpu.IdleUntil(at)
			continue
		}

		task := level.queue.PopFront()
		records = append(records, cpu.Execute(task, level.slice(task.Remaining)))
		if task.Done() {
			continue
		}
		pending.admit(cpu.Clock(), enter)
		lower := levels[min(level.priority+1, len(levels)-1)]
		logrus.Debugf("pid: %d moves from level %d to level %d", task.ID, level.priority, lower.priority)
		task.Level = lower.priority
		lower.queue.PushBack(task)
	}

	return &core.Schedule{
		Records:  records,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}, nil
}

func highestNonEmpty(levels []*feedbackLevel) *feedbackLevel {
	for _, l := range levels {
		if l.queue.Len() > 0 {
			return l
		}
	}
	return nil
}

// validateLevels requires a positive slice on every level but the last, which
// may be unbounded.
func validateLevels(timeQuantumList []int) error {
	last := len(timeQuantumList) - 1
	for i, q := range timeQuantumList {
		if q < 0 || (q == 0 && i != last) {
			return fmt.Errorf("%w: level %d time quantum %d", core.ErrInvalidInput, i, q)
		}
	}
	return nil
}
