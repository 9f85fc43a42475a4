package responses

import "priority-scheduler/internal/requests"

type ProcessResponse struct {
	ID             string `json:"id"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	CompletionTime int    `json:"completion_time"`
}

// Request returns the descriptor this result was scheduled from.
func (p ProcessResponse) Request() requests.Process {
	return requests.Process{
		ID:        p.ID,
		BurstTime: p.BurstTime,
		Priority:  p.Priority,
	}
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AveragesDefined       bool              `json:"averages_defined"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}
