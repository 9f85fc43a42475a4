package util

import (
	"math"

	"priority-scheduler/internal/responses"
)

// CalculateAverage returns ok == false, and zero averages, for an empty result set.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64, ok bool) {
	if len(processDetails) == 0 {
		return 0, 0, false
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return averageWaitingTime, averageTurnAroundTime, true
}

// Round rounds value half away from zero to the given number of decimals.
func Round(value float64, decimals int) float64 {
	if decimals < 0 {
		return value
	}

	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
