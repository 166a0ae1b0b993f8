package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes that arrive together keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) (*core.Schedule, error) {
	tasks, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Infof("running fcfs algorithm on %d processes", len(tasks))

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Arrival < tasks[j].Arrival
	})
	return runToCompletion(tasks), nil
}

// runToCompletion dispatches tasks in the given order without preemption:
// start = max(clock, arrival), finish = start + burst.
func runToCompletion(tasks []*core.Task) *core.Schedule {
	cpu := core.NewCPU()
	records := make([]core.ScheduledProcess, 0, len(tasks))
	for _, task := range tasks {
		cpu.IdleUntil(task.Arrival)
		records = append(records, cpu.Execute(task, task.Burst))
	}
	return &core.Schedule{
		Records:  records,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}
}
