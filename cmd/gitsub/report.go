package main

import (
	"fmt"
	"strings"

	"gitsub/internal/output"
	"gitsub/internal/subproject"
	"gitsub/internal/ui/styles"
)

// reportResults prints one line per candidate plus a summary, and returns
// an error iff any outcome is a failing kind. This is the only place
// outcomes collapse into a process exit code.
func reportResults(out *output.Printer, results []subproject.Result, all, dryRun bool) error {
	var linked, already, failed int
	for _, r := range results {
		out.Println(formatResult(r, dryRun))
		switch r.Outcome {
		case subproject.Linked:
			linked++
		case subproject.AlreadyLinked:
			already++
		default:
			failed++
		}
	}

	switch {
	case len(results) == 0 && all:
		out.Println("No sub-projects found")
	case failed > 0:
		out.Println(summaryLine(linked, already, failed))
		return fmt.Errorf("%d of %d sub-projects failed", failed, len(results))
	case all || len(results) > 1:
		out.Println(summaryLine(linked, already, failed))
	}
	return nil
}

func summaryLine(linked, already, failed int) string {
	parts := []string{fmt.Sprintf("%d linked", linked)}
	if already > 0 {
		parts = append(parts, fmt.Sprintf("%d already linked", already))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return strings.Join(parts, ", ")
}

func formatResult(r subproject.Result, dryRun bool) string {
	label := r.Outcome.String()
	if dryRun && r.Outcome == subproject.Linked {
		label = "would link"
	}
	line := fmt.Sprintf("%s  %s", r.Path, label)
	if r.Detail != "" {
		line += " " + styles.Render(styles.MutedStyle, "("+r.Detail+")")
	}
	if r.Outcome.Failure() {
		return styles.Fail(line)
	}
	return styles.OK(line)
}
