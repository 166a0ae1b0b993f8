package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/util"
)

// GenerateResponse turns a schedule into the response shape shared by the
// HTTP API and the CLI. Averages are taken over one final record per process;
// per-slice records are included for RR and MLFQ.
func GenerateResponse(alg Algorithm, schedule *core.Schedule) responses.ScheduleResponse {
	finals := schedule.Finals()
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(finals)

	metric := schedule.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(finals)) / float64(metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		Algorithm:             string(alg),
		TotalTime:             float64(metric.TotalTime),
		IdleTime:              float64(metric.IdleTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		TotalWaitingTime:      util.TotalWaiting(finals),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               generateProcessDetails(finals),
		Timeline:              make([]responses.SliceResponse, 0, len(schedule.Timeline)),
	}
	if alg == RoundRobin || alg == MultilevelFeedbackQueue {
		response.Slices = generateProcessDetails(schedule.Records)
	}
	for _, s := range schedule.Timeline {
		response.Timeline = append(response.Timeline, responses.SliceResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			Finish:    s.Finish,
			Level:     s.Level,
		})
	}
	return response
}

func generateProcessDetails(records []core.ScheduledProcess) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(records))
	for _, r := range records {
		details = append(details, responses.ProcessResponse{
			ProcessId:      r.ID,
			ArrivalTime:    r.Arrival,
			BurstTime:      r.Burst,
			StartTime:      r.StartTime,
			FinishTime:     r.FinishTime,
			WaitingTime:    r.Waiting,
			TurnAroundTime: r.Turnaround(),
			RemainingTime:  r.Remaining,
			Level:          r.Level,
		})
	}
	return details
}
