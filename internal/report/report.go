package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Abbub1/schedsim/internal/schedule"
)

// Write outputs one result as a title banner, a GANTT chart, a table of
// timing and the two averages.
func Write(w io.Writer, res schedule.Result) {
	outputTitle(w, res.Title)
	outputGantt(w, res.Gantt)
	outputSchedule(w, res)
	_, _ = fmt.Fprintf(w, "Average waiting time = %.2f\n", res.AveWait)
	_, _ = fmt.Fprintf(w, "Average turn around time = %.2f\n\n", res.AveTurnaround)
}

// WriteAll writes every result followed by the comparison table.
func WriteAll(w io.Writer, results []schedule.Result) {
	for i := range results {
		Write(w, results[i])
	}
	if len(results) > 1 {
		WriteComparison(w, results)
	}
}

// WriteComparison outputs the averages of several results side by side.
func WriteComparison(w io.Writer, results []schedule.Result) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Average wait", "Average turnaround", "Throughput"})
	for _, res := range results {
		table.Append([]string{
			res.Title,
			fmt.Sprintf("%.2f", res.AveWait),
			fmt.Sprintf("%.2f", res.AveTurnaround),
			fmt.Sprintf("%.2f/t", res.Throughput),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)+4)
	_, _ = fmt.Fprintf(w, "%s\n  %s\n%s\n", rule, title, rule)
}

const (
	idleLabel = "idle"
	cellWidth = 8
)

// ganttCell is one box of the printed chart: a process slice, or the idle
// gap before it.
type ganttCell struct {
	label       string
	start, stop int64
}

func ganttCells(gantt []schedule.TimeSlice) []ganttCell {
	cells := make([]ganttCell, 0, len(gantt))
	var clock int64
	for _, slice := range gantt {
		if slice.Start > clock {
			cells = append(cells, ganttCell{label: idleLabel, start: clock, stop: slice.Start})
		}
		cells = append(cells, ganttCell{label: strconv.FormatInt(slice.PID, 10), start: slice.Start, stop: slice.Stop})
		clock = slice.Stop
	}
	return cells
}

func outputGantt(w io.Writer, gantt []schedule.TimeSlice) {
	cells := ganttCells(gantt)

	var boxes, ticks strings.Builder
	boxes.WriteString("|")
	for i, cell := range cells {
		padding := strings.Repeat(" ", max(1, (cellWidth-len(cell.label))/2))
		boxes.WriteString(padding + cell.label + padding + "|")

		ticks.WriteString(strconv.FormatInt(cell.start, 10) + "\t")
		if i == len(cells)-1 {
			ticks.WriteString(strconv.FormatInt(cell.stop, 10))
		}
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, boxes.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", ticks.String())
}

func outputSchedule(w io.Writer, res schedule.Result) {
	rows := make([][]string, len(res.Processes))
	for i, p := range res.Processes {
		rows[i] = []string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstDuration),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AveWait),
		fmt.Sprintf("Average\n%.2f", res.AveTurnaround)})
	table.Render()
}
