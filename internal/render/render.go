package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"priority-scheduler/internal/responses"
)

var (
	palette = []lipgloss.Color{
		lipgloss.Color("#5B8DEF"),
		lipgloss.Color("#F59E0B"),
		lipgloss.Color("#10B981"),
		lipgloss.Color("#EF4444"),
		lipgloss.Color("#A855F7"),
	}
	muted = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// ProcessColor picks a display colour from the number following the first character of id,
// so P1..P5 cycle through the palette. Ids without such a number get the muted colour.
func ProcessColor(id string) lipgloss.Color {
	if len(id) < 2 {
		return muted
	}

	digits := id[1:]
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(digits[:end])
	if err != nil || n < 1 {
		return muted
	}

	return palette[(n-1)%len(palette)]
}

func Table(response responses.ScheduleResponse) string {
	rows := make([][]string, 0, len(response.Details))
	for _, process := range response.Details {
		rows = append(rows, []string{
			process.ID,
			strconv.Itoa(process.BurstTime),
			strconv.Itoa(process.Priority),
			strconv.Itoa(process.WaitingTime),
			strconv.Itoa(process.TurnAroundTime),
			strconv.Itoa(process.CompletionTime),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Process", "Burst", "Priority", "Waiting", "Turnaround", "Completion").
		Rows(rows...).
		String()
}

// GanttWidth is the column budget the Gantt bar spreads the schedule over.
const GanttWidth = 80

// Gantt draws one coloured segment per process in execution order with the clock underneath.
// Each segment takes its share of GanttWidth by burst time, but is never narrower than the id.
func Gantt(details []responses.ProcessResponse) string {
	if len(details) == 0 {
		return ""
	}

	var total float64
	for _, process := range details {
		if process.BurstTime > 0 {
			total += float64(process.BurstTime)
		}
	}

	var bar, axis strings.Builder
	axis.WriteString("0")

	for _, process := range details {
		width := len(process.ID) + 2
		if total > 0 && process.BurstTime > 0 {
			width = max(width, int(float64(process.BurstTime)/total*GanttWidth))
		}

		label := strconv.Itoa(process.CompletionTime)
		width = max(width, len(label))

		bar.WriteString(
			lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Background(ProcessColor(process.ID)).
				Foreground(lipgloss.Color("#FFFFFF")).
				Render(process.ID),
		)
		axis.WriteString(fmt.Sprintf("%*s", width, label))
	}

	return bar.String() + "\n" + axis.String()
}

func Summary(response responses.ScheduleResponse) string {
	waiting, turnaround := "n/a", "n/a"
	if response.AveragesDefined {
		waiting = strconv.FormatFloat(response.AverageWaitingTime, 'f', -1, 64)
		turnaround = strconv.FormatFloat(response.AverageTurnAroundTime, 'f', -1, 64)
	}

	return labelStyle.Render("Average waiting time:    ") + waiting + "\n" +
		labelStyle.Render("Average turnaround time: ") + turnaround
}

func Schedule(response responses.ScheduleResponse) string {
	sections := []string{
		titleStyle.Render(strings.ToUpper(response.Algorithm) + " scheduling"),
		Table(response),
	}
	if gantt := Gantt(response.Details); gantt != "" {
		sections = append(sections, gantt)
	}
	sections = append(sections, Summary(response))

	return strings.Join(sections, "\n\n")
}
