package schedulers

import (
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"

	"priority-scheduler/internal/core"
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
)

type Algorithm string

const (
	AlgorithmPriority            Algorithm = "priority"
	AlgorithmFirstComeFirstServe Algorithm = "fcfs"
	AlgorithmShortestJobFirst    Algorithm = "sjf"
)

// Algorithms lists every supported algorithm in comparison order.
var Algorithms = []Algorithm{
	AlgorithmPriority,
	AlgorithmFirstComeFirstServe,
	AlgorithmShortestJobFirst,
}

// algorithms maps every name to the function that computes its schedule.
var algorithms = map[Algorithm]func(processes []requests.Process) []responses.ProcessResponse{
	AlgorithmPriority:            Priority,
	AlgorithmFirstComeFirstServe: FirstComeFirstServe,
	AlgorithmShortestJobFirst:    ShortestJobFirst,
}

func Lookup(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := algorithms[algorithm]; !ok {
		return "",
			goerrors.ErrValidation{
				Caller: "Lookup",
				Issue: goerrors.ErrInvalidInput{
					InputName: fmt.Sprintf("algorithm %q", name),
				},
			}
	}

	return algorithm, nil
}

// Schedule runs the processes with the given algorithm and builds the analytics response.
// Averages are rounded to precision decimals.
func Schedule(algorithm Algorithm, processes []requests.Process, precision int) (responses.ScheduleResponse, error) {
	schedule, ok := algorithms[algorithm]
	if !ok {
		return responses.ScheduleResponse{},
			fmt.Errorf("unknown algorithm %q", algorithm)
	}

	details := schedule(processes)
	return GenerateResponse(algorithm, details, core.Measure(details), precision), nil
}

// All runs every algorithm on the same input, in the order of Algorithms.
func All(processes []requests.Process, precision int) []responses.ScheduleResponse {
	results := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		details := algorithms[algorithm](processes)
		results = append(results, GenerateResponse(algorithm, details, core.Measure(details), precision))
	}

	return results
}

func execute(order []requests.Process) []responses.ProcessResponse {
	cpu := core.NewCpu()

	details := make([]responses.ProcessResponse, 0, len(order))
	for _, process := range order {
		details = append(details, cpu.Execute(process))
	}

	return details
}
