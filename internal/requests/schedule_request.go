package requests

import (
	"cpu-scheduling-simulator/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
}

// ScheduleRequests is the body of every scheduling endpoint and the shape of
// a workload file. Zero TimeQuantum and empty LevelsTimeQuantum mean "use the
// configured default".
type ScheduleRequests struct {
	Jobs              []Job    `json:"jobs" yaml:"jobs"`
	TimeQuantum       int      `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	LevelsTimeQuantum []int    `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
	Algorithms        []string `json:"algorithms,omitempty" yaml:"algorithms,omitempty"`
}

// Processes converts the jobs into engine input, keeping their order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{ID: job.ProcessId, Arrival: job.ArrivalTime, Burst: job.BurstTime}
	}
	return processes
}

// FromProcesses builds a request carrying processes as jobs.
func FromProcesses(processes []core.Process) *ScheduleRequests {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		jobs[i] = Job{ProcessId: p.ID, ArrivalTime: p.Arrival, BurstTime: p.Burst}
	}
	return &ScheduleRequests{Jobs: jobs}
}
