package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id" yaml:"process_id"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	StartTime      int `json:"start_time" yaml:"start_time"`
	FinishTime     int `json:"finish_time" yaml:"finish_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
	RemainingTime  int `json:"remaining_time" yaml:"remaining_time"`
	Level          int `json:"level" yaml:"level"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id" yaml:"process_id"`
	Start     int `json:"start" yaml:"start"`
	Finish    int `json:"finish" yaml:"finish"`
	Level     int `json:"level" yaml:"level"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	TotalTime             float64           `json:"total_time" yaml:"total_time"`
	IdleTime              float64           `json:"idle_time" yaml:"idle_time"`
	TotalWaitingTime      int               `json:"total_waiting_time" yaml:"total_waiting_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
	Slices                []ProcessResponse `json:"slices,omitempty" yaml:"slices,omitempty"`
	Timeline              []SliceResponse   `json:"timeline" yaml:"timeline"`
}

type AllSchedulesResponse struct {
	Results []ScheduleResponse `json:"results" yaml:"results"`
}
