// Package report renders schedule responses for the terminal: a text Gantt
// chart, a per-process table and a cross-policy comparison.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
)

var (
	titleColor = color.New(color.Bold, color.FgCyan)
	labelColor = color.New(color.Faint)
)

// Render writes the title, Gantt chart and results table of one policy run.
func Render(w io.Writer, title string, resp responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, resp.Timeline)
	outputSchedule(w, resp)
	if len(resp.Slices) > 0 {
		outputSlices(w, resp.Slices)
	}
}

func outputTitle(w io.Writer, title string) {
	_, _ = titleColor.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = titleColor.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = titleColor.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []responses.SliceResponse) {
	_, _ = labelColor.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	var bars, ticks strings.Builder
	bars.WriteString("|")
	cell := func(label string, start int) {
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		c := padding + label + padding
		bars.WriteString(c + "|")
		ticks.WriteString(fmt.Sprintf("%-*d", len(c)+1, start))
	}
	previous := 0
	for _, s := range timeline {
		if s.Start > previous {
			cell("idle", previous)
		}
		cell(fmt.Sprint(s.ProcessId), s.Start)
		previous = s.Finish
	}
	ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].Finish))
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = labelColor.Fprintln(w, "Schedule table")
	// MLFQ reports the level each process finished at.
	withLevel := resp.Algorithm == string(schedulers.MultilevelFeedbackQueue)
	rows := make([][]string, 0, len(resp.Details))
	for _, p := range resp.Details {
		row := []string{
			fmt.Sprint(p.ProcessId),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
		}
		if withLevel {
			row = append(row, fmt.Sprint(p.Level))
		}
		rows = append(rows, row)
	}
	header := []string{"ID", "Arrival", "Burst", "Start", "Finish", "Waiting", "Turnaround"}
	footer := []string{"", "", "",
		fmt.Sprintf("Response\n%.2f", resp.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime)}
	if withLevel {
		header = append(header, "Level")
		footer = append(footer, "")
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
	_, _ = fmt.Fprintf(w, "total %.0f  idle %.0f  utilization %.1f%%\n\n",
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization*100)
}

func outputSlices(w io.Writer, slices []responses.ProcessResponse) {
	_, _ = labelColor.Fprintln(w, "Slices")
	rows := make([][]string, 0, len(slices))
	for _, p := range slices {
		rows = append(rows, []string{
			fmt.Sprint(p.ProcessId),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.RemainingTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.Level),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Start", "Finish", "Remaining", "Waiting", "Level"})
	table.AppendBulk(rows)
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// RenderComparison writes one row per policy so runs over the same batch can
// be compared side by side.
func RenderComparison(w io.Writer, results []responses.ScheduleResponse) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Total Waiting", "Avg Turnaround", "Avg Response", "Makespan", "Utilization"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprint(r.TotalWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.0f", r.TotalTime),
			fmt.Sprintf("%.1f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}
