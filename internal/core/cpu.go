package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	ProcessID int
	Start     int
	Finish    int
	Level     int
}

// Duration is the length of the slice in time units.
func (s Slice) Duration() int {
	return s.Finish - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the single simulated processor. It owns the clock and is the only
// place where a task's waiting time is accumulated: a task waits from the
// moment it becomes ready until it is dispatched.
type CPU struct {
	clock    int
	timeline []Slice
	metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil moves the clock forward to t, counting the gap as idle time.
// It never moves the clock backwards.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.Debugf("[clock %05d] cpu idle until %d", c.clock, t)
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute dispatches task for d time units starting at the current clock and
// returns the record of that slice.
func (c *CPU) Execute(task *Task, d int) ScheduledProcess {
	if task.Arrival > c.clock {
		panic(fmt.Sprintf("pid %d dispatched at %d before its arrival %d", task.ID, c.clock, task.Arrival))
	}
	start := c.clock
	task.Waited += start - task.readySince
	if task.StartTime < 0 {
		task.StartTime = start
	}
	c.run(task, d)
	c.timeline = append(c.timeline, Slice{ProcessID: task.ID, Start: start, Finish: c.clock, Level: task.Level})
	logrus.WithFields(logrus.Fields{
		"pid":       task.ID,
		"start":     start,
		"finish":    c.clock,
		"remaining": task.Remaining,
		"level":     task.Level,
	}).Debug("dispatch")
	return task.Record(start, c.clock)
}

// Continue keeps task on the CPU for d more units, extending the slice it is
// already running in.
func (c *CPU) Continue(task *Task, d int) {
	n := len(c.timeline)
	if n == 0 || c.timeline[n-1].ProcessID != task.ID || c.timeline[n-1].Finish != c.clock {
		panic(fmt.Sprintf("pid %d is not the running process at %d", task.ID, c.clock))
	}
	c.run(task, d)
	c.timeline[n-1].Finish = c.clock
}

func (c *CPU) run(task *Task, d int) {
	if d <= 0 || d > task.Remaining {
		panic(fmt.Sprintf("pid %d cannot run for %d units with %d remaining", task.ID, d, task.Remaining))
	}
	c.clock += d
	c.metric.UtilizationTime += d
	task.Remaining -= d
	task.readySince = c.clock
	if task.Remaining == 0 {
		task.FinishTime = c.clock
	}
}

// Timeline returns the slices executed so far in dispatch order.
func (c *CPU) Timeline() []Slice {
	return c.timeline
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
