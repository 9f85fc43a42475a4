package schedulers

import (
	"priority-scheduler/internal/core"
	"priority-scheduler/internal/responses"
	"priority-scheduler/internal/util"
)

func GenerateResponse(algorithm Algorithm, processDetails []responses.ProcessResponse, metric core.CpuMetric, precision int) responses.ScheduleResponse {
	averageWaitingTime, averageTurnAroundTime, ok := util.CalculateAverage(processDetails)

	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = 1 - float64(metric.IdleTime)/float64(metric.TotalTime)
		throughput = float64(len(processDetails)) / float64(metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageWaitingTime:    util.Round(averageWaitingTime, precision),
		AverageTurnAroundTime: util.Round(averageTurnAroundTime, precision),
		AveragesDefined:       ok,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               processDetails,
	}
}
