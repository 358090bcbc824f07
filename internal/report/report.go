// Package report renders scheduling results as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, schedule core.Schedule) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, interval := range schedule {
		pid := "P" + strconv.Itoa(interval.ProcessId)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, interval := range schedule {
		_, _ = fmt.Fprint(w, interval.StartTime, "\t")
		if i == len(schedule)-1 {
			_, _ = fmt.Fprint(w, interval.EndTime)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// CPU writes the Gantt line and a per-process table for response. Rows follow
// the workload order.
func CPU(w io.Writer, processes []core.Process, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, response.Schedule)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response"})
	for _, process := range processes {
		row := []string{
			strconv.Itoa(process.ProcessId),
			strconv.Itoa(process.Priority),
			strconv.Itoa(process.BurstTime),
			strconv.Itoa(process.ArrivalTime),
			"-", "-", "-",
		}
		if turnaround, ok := response.TurnaroundTimes[process.ProcessId]; ok {
			row[4] = strconv.Itoa(response.WaitingTimes[process.ProcessId])
			row[5] = strconv.Itoa(turnaround)
		}
		for _, detail := range response.Details {
			if detail.ProcessId == process.ProcessId {
				row[6] = strconv.Itoa(detail.ResponseTime)
			}
		}
		table.Append(row)
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Utilization %.2f%%  Throughput %.2f/t  Idle %d\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime)
	_, _ = fmt.Fprintf(w, "Complexity: time %s (best) / %s (average) / %s (worst), space %s. %s\n",
		response.Complexity.Time.Best, response.Complexity.Time.Average, response.Complexity.Time.Worst,
		response.Complexity.Space, response.Complexity.Description)
}

// Disk writes the head trace with the distance of each seek.
func Disk(w io.Writer, response responses.DiskScheduleResponse) {
	outputTitle(w, response.Algorithm)
	_, _ = fmt.Fprintf(w, "Initial head position: %d\nDirection: %s\n\n", response.Head, response.Direction)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "From", "To", "Distance"})
	from := response.Head
	for i, track := range response.Sequence {
		distance := track - from
		if distance < 0 {
			distance = -distance
		}
		table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(from), strconv.Itoa(track), strconv.Itoa(distance)})
		from = track
	}
	table.SetFooter([]string{"", "", "Total", strconv.Itoa(response.TotalMovement)})
	table.Render()
}
