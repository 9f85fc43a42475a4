package schedulers

import (
	"sort"

	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
)

// Priority schedules the processes non-preemptively, lowest priority value first.
// Processes sharing a priority run in input order. The input is not modified.
func Priority(processes []requests.Process) []responses.ProcessResponse {
	return execute(priorityOrder(processes))
}

func priorityOrder(processes []requests.Process) []requests.Process {
	order := make([]requests.Process, len(processes))
	copy(order, processes)

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Priority < order[j].Priority
	})
	return order
}
