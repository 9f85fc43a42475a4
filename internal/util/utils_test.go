package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"priority-scheduler/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	t.Run(
		"1. empty",
		func(t *testing.T) {
			waiting, turnaround, ok := CalculateAverage(nil)
			require.False(t, ok)
			require.Zero(t, waiting)
			require.Zero(t, turnaround)
			require.False(t, math.IsNaN(waiting))
		},
	)

	t.Run(
		"2. three processes",
		func(t *testing.T) {
			waiting, turnaround, ok := CalculateAverage(
				[]responses.ProcessResponse{
					{WaitingTime: 0, TurnAroundTime: 7},
					{WaitingTime: 7, TurnAroundTime: 22},
					{WaitingTime: 22, TurnAroundTime: 27},
				},
			)
			require.True(t, ok)
			require.InDelta(t, 29.0/3.0, waiting, 1e-9)
			require.InDelta(t, 56.0/3.0, turnaround, 1e-9)
		},
	)
}

func TestRound(t *testing.T) {
	require.Equal(t, 9.67, Round(29.0/3.0, 2))
	require.Equal(t, 18.67, Round(56.0/3.0, 2))
	require.Equal(t, 2.5, Round(2.5, 1))
	require.Equal(t, 3.0, Round(2.5, 0))
	require.Equal(t, 1.23456, Round(1.23456, -1))
}
