package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"subburn/internal/deps"
	"subburn/internal/pipeline"
)

func tableStyle() table.Style {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return table.StyleRounded
	}
	return table.StyleDefault
}

func renderResults(results []pipeline.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(tableStyle())
	tw.AppendHeader(table.Row{"Video", "Result"})

	succeeded := 0
	for _, res := range results {
		outcome := "failed"
		if res.Succeeded {
			outcome = "ok"
			succeeded++
		}
		tw.AppendRow(table.Row{filepath.Base(res.Path), outcome})
	}
	tw.AppendFooter(table.Row{"total", fmt.Sprintf("%d/%d ok", succeeded, len(results))})
	return tw.Render()
}

func renderDepStatuses(statuses []deps.Status) string {
	tw := table.NewWriter()
	tw.SetStyle(tableStyle())
	tw.AppendHeader(table.Row{"Dependency", "Command", "Available", "Detail"})
	for _, status := range statuses {
		tw.AppendRow(table.Row{status.Name, status.Command, yesNo(status.Available), status.Detail})
	}
	return tw.Render()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
