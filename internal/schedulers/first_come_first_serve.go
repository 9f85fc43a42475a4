package schedulers

import (
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
)

// FirstComeFirstServe runs the processes in input order.
func FirstComeFirstServe(processes []requests.Process) []responses.ProcessResponse {
	return execute(firstComeFirstServeOrder(processes))
}

// all processes arrive at time 0, so submission order is input order
func firstComeFirstServeOrder(processes []requests.Process) []requests.Process {
	order := make([]requests.Process, len(processes))
	copy(order, processes)
	return order
}
