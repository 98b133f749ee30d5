package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dancerunaway/internal/input"
	"dancerunaway/internal/scores"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// formatJoysticks renders the --list_joysticks output: one line per
// device with its name and GUID.
func formatJoysticks(devices []input.Device) string {
	var b strings.Builder
	if len(devices) == 0 {
		b.WriteString("No joysticks attached.\n")
		return b.String()
	}
	for _, d := range devices {
		fmt.Fprintf(&b, "Joystick %s, GUID: %s\n", d.Name, d.GUID)
	}
	return b.String()
}

// formatRuns renders the scores listing, newest first, with the best
// escape called out.
func formatRuns(runs []scores.Run, best *scores.Run) string {
	var b strings.Builder
	if len(runs) == 0 {
		b.WriteString("No runs recorded yet.\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render("Recent runs"))
	b.WriteString("\n")
	for _, run := range runs {
		line := fmt.Sprintf("%s  %-7s  level %d  %d steps  %s",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Outcome,
			run.Level+1,
			run.Steps,
			formatDuration(run.Duration))
		if best != nil && run.ID == best.ID {
			line = bestStyle.Render(line + "  (best escape)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if best == nil {
		b.WriteString(dimStyle.Render("Nobody has escaped yet."))
		b.WriteString("\n")
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
