package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"priority-scheduler/internal/responses"
)

func TestProcessColor(t *testing.T) {
	require.Equal(t, palette[0], ProcessColor("P1"))
	require.Equal(t, palette[2], ProcessColor("P3"))
	require.Equal(t, palette[0], ProcessColor("P6"))
	require.Equal(t, palette[1], ProcessColor("P12abc"))
	require.Equal(t, muted, ProcessColor("P0"))
	require.Equal(t, muted, ProcessColor("Px"))
	require.Equal(t, muted, ProcessColor("X"))
	require.Equal(t, muted, ProcessColor(""))
}

var response = responses.ScheduleResponse{
	Algorithm:             "priority",
	TotalTime:             27,
	AverageWaitingTime:    9.67,
	AverageTurnAroundTime: 18.67,
	AveragesDefined:       true,
	Details: []responses.ProcessResponse{
		{ID: "P2", BurstTime: 7, Priority: 1, WaitingTime: 0, TurnAroundTime: 7, CompletionTime: 7},
		{ID: "P3", BurstTime: 15, Priority: 2, WaitingTime: 7, TurnAroundTime: 22, CompletionTime: 22},
		{ID: "P1", BurstTime: 5, Priority: 3, WaitingTime: 22, TurnAroundTime: 27, CompletionTime: 27},
	},
}

func TestSchedule(t *testing.T) {
	rendered := Schedule(response)

	require.Contains(t, rendered, "PRIORITY scheduling")
	require.Contains(t, rendered, "Turnaround")
	require.Contains(t, rendered, "P2")
	require.Contains(t, rendered, "27")
	require.Contains(t, rendered, "9.67")
	require.Contains(t, rendered, "18.67")
}

func TestGantt(t *testing.T) {
	require.Empty(t, Gantt(nil))

	gantt := Gantt(response.Details)
	require.Contains(t, gantt, "P3")
	require.Contains(t, gantt, "22")
}

func TestGanttWidthIsBounded(t *testing.T) {
	t.Run(
		"1. single huge burst",
		func(t *testing.T) {
			gantt := Gantt(
				[]responses.ProcessResponse{
					{ID: "P1", BurstTime: 1_000_000, Priority: 1, TurnAroundTime: 1_000_000, CompletionTime: 1_000_000},
				},
			)

			for _, line := range strings.Split(gantt, "\n") {
				require.LessOrEqual(t, lipgloss.Width(line), GanttWidth+1)
			}
			require.Contains(t, gantt, "1000000")
		},
	)

	t.Run(
		"2. segments share the width by burst time",
		func(t *testing.T) {
			gantt := Gantt(
				[]responses.ProcessResponse{
					{ID: "P1", BurstTime: 3_000_000, CompletionTime: 3_000_000},
					{ID: "P2", BurstTime: 1_000_000, WaitingTime: 3_000_000, CompletionTime: 4_000_000},
				},
			)

			lines := strings.Split(gantt, "\n")
			require.Len(t, lines, 2)
			require.LessOrEqual(t, lipgloss.Width(lines[0]), GanttWidth)
			require.Equal(t, lipgloss.Width(lines[0])+1, lipgloss.Width(lines[1]))
		},
	)

	t.Run(
		"3. zero and negative bursts keep the minimum width",
		func(t *testing.T) {
			gantt := Gantt(
				[]responses.ProcessResponse{
					{ID: "A", BurstTime: 0},
					{ID: "B", BurstTime: -4, CompletionTime: -4},
				},
			)

			require.Contains(t, gantt, "A")
			require.LessOrEqual(t, lipgloss.Width(strings.Split(gantt, "\n")[0]), 2*GanttWidth)
		},
	)
}

func TestSummaryUndefinedAverages(t *testing.T) {
	summary := Summary(responses.ScheduleResponse{Algorithm: "priority"})
	require.Contains(t, summary, "n/a")
	require.NotContains(t, summary, "NaN")
}
