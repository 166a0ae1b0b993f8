package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduling-simulator/internal/core"
)

// ScheduleShortestJobFirst runs processes to completion ordered by burst,
// then arrival, then input order. The whole batch is treated as known up
// front: the order ignores arrival gating, though no process starts before
// it arrives.
// Warning: long jobs starve behind a steady supply of short ones.
func ScheduleShortestJobFirst(processes []core.Process) (*core.Schedule, error) {
	tasks, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Infof("running sjf algorithm on %d processes", len(tasks))

	sortShortestJob(tasks)
	return runToCompletion(tasks), nil
}

func sortShortestJob(tasks []*core.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Burst != tasks[j].Burst {
			return tasks[i].Burst < tasks[j].Burst
		}
		return tasks[i].Arrival < tasks[j].Arrival
	})
}
