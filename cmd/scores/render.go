package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/milk9111/catburglar/storage"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	escapedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	caughtStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
)

var columnWidths = []int{4, 8, 8, 7, 10, 16}

func row(cells ...string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = cellStyle.Width(columnWidths[i] + 2).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func outcome(r storage.Run) string {
	if r.Escaped {
		return escapedStyle.Render("escaped")
	}
	return caughtStyle.Render("caught")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func renderRuns(runs []storage.Run) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cat Burglar - Best Runs"))
	b.WriteString("\n\n")

	if len(runs) == 0 {
		b.WriteString(mutedStyle.Render("No runs recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(row("Rank", "Time", "Result", "Enemies", "Seed", "Date")))
	b.WriteString("\n")
	for i, r := range runs {
		b.WriteString(row(
			fmt.Sprintf("%d", i+1),
			formatDuration(r.Duration),
			outcome(r),
			fmt.Sprintf("%d", r.Enemies),
			fmt.Sprintf("%d", r.Seed),
			r.PlayedAt.Format("2006-01-02 15:04"),
		))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBest(r storage.Run, ok bool) string {
	if !ok {
		return mutedStyle.Render("No runs recorded yet.")
	}
	return fmt.Sprintf("%s %s after %s (seed %d, %d enemies)",
		titleStyle.Render("Best:"), outcome(r), formatDuration(r.Duration), r.Seed, r.Enemies)
}
