package schedulers

import (
	"sort"

	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
)

// ShortestJobFirst runs the processes by ascending burst time, ties in input order.
func ShortestJobFirst(processes []requests.Process) []responses.ProcessResponse {
	return execute(shortestJobFirstOrder(processes))
}

func shortestJobFirstOrder(processes []requests.Process) []requests.Process {
	order := make([]requests.Process, len(processes))
	copy(order, processes)

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].BurstTime < order[j].BurstTime
	})
	return order
}
