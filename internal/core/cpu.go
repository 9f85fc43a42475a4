package core

import (
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu executes processes back to back on a logical clock that starts at 0.
// Every process is ready at time 0, so the cpu never idles between processes.
// The clock is a plain int: burst totals beyond math.MaxInt wrap around.
type Cpu struct {
	clock int
}

func NewCpu() *Cpu {
	return &Cpu{}
}

// Execute runs the process to completion and returns its annotated result.
func (c *Cpu) Execute(process requests.Process) responses.ProcessResponse {
	waitingTime := c.clock
	c.clock += process.BurstTime

	return responses.ProcessResponse{
		ID:             process.ID,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		WaitingTime:    waitingTime,
		TurnAroundTime: waitingTime + process.BurstTime,
		CompletionTime: c.clock,
	}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Measure derives the cpu metric of a finished schedule from its results in execution order.
func Measure(processDetails []responses.ProcessResponse) CpuMetric {
	if len(processDetails) == 0 {
		return CpuMetric{}
	}

	var utilizationTime int
	for _, process := range processDetails {
		utilizationTime += process.BurstTime
	}

	totalTime := processDetails[len(processDetails)-1].CompletionTime

	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}
