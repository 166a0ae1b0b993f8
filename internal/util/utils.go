package util

import "cpu-scheduling-simulator/internal/core"

// CalculateAverage averages waiting, response and turnaround time over one
// final record per process. An empty slice yields zeros.
func CalculateAverage(processDetails []core.ScheduledProcess) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0, 0
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.Waiting)
		responseTimeSum += float64(process.StartTime - process.Arrival)
		turnAroundTimeSum += float64(process.Turnaround())
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTimeAroundTime = turnAroundTimeSum / processCount
	return
}

// TotalWaiting sums waiting time over final records.
func TotalWaiting(processDetails []core.ScheduledProcess) int {
	total := 0
	for _, p := range processDetails {
		total += p.Waiting
	}
	return total
}
