package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathstep/search"
)

// maxListed caps how many ids of a set are printed per observation.
const maxListed = 16

var (
	colorOpen    = lipgloss.Color("#F4D03F")
	colorClosed  = lipgloss.Color("#2C4A54")
	colorCurrent = lipgloss.Color("#2CD7C7")
	colorPath    = lipgloss.Color("#20B9B4")
	colorError   = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title   lipgloss.Style
	Step    lipgloss.Style
	Open    lipgloss.Style
	Closed  lipgloss.Style
	Current lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorCurrent),
	Step:    lipgloss.NewStyle().Bold(true).Width(9),
	Open:    lipgloss.NewStyle().Foreground(colorOpen),
	Closed:  lipgloss.NewStyle().Foreground(colorClosed),
	Current: lipgloss.NewStyle().Bold(true).Foreground(colorCurrent),
	Path:    lipgloss.NewStyle().Bold(true).Foreground(colorPath),
	Muted:   lipgloss.NewStyle().Faint(true),
	Warning: lipgloss.NewStyle().Foreground(colorOpen),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPath).
		Padding(0, 1),
}

// formatIDs prints ids as "[1 2 3]", eliding past maxListed.
func formatIDs(ids []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i == maxListed {
			fmt.Fprintf(&b, " …+%d", len(ids)-maxListed)
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte(']')

	return b.String()
}

// renderObservation formats one observation as a single line.
func renderObservation(obs search.Observation) string {
	head := styles.Step.Render(fmt.Sprintf("step %d", obs.Step))
	switch obs.Kind {
	case search.PathFound:
		return head + styles.Path.Render(fmt.Sprintf("path %s cost %.4f", formatIDs(obs.Path), obs.Cost))
	case search.NoPath:
		return head + styles.Warning.Render(fmt.Sprintf("no path (closed %d nodes)", len(obs.Closed)))
	}

	parts := make([]string, 0, 3)
	if obs.HasCurrent {
		parts = append(parts, styles.Current.Render(fmt.Sprintf("expand %d", obs.Current)))
	} else {
		parts = append(parts, styles.Muted.Render("start"))
	}
	parts = append(parts,
		styles.Open.Render("open "+formatIDs(obs.Open)),
		styles.Closed.Render("closed "+formatIDs(obs.Closed)),
	)

	return head + strings.Join(parts, "  ")
}

// summary is what the closing box reports.
type summary struct {
	Algorithm search.Algorithm
	Start     int
	Goal      int
	Result    search.Result
	RunID     string
	Verified  string
}

func renderSummary(s summary) string {
	lines := []string{
		styles.Title.Render(fmt.Sprintf("%s %d → %d", s.Algorithm, s.Start, s.Goal)),
	}
	if s.Result.Found {
		lines = append(lines,
			"path     "+formatIDs(s.Result.Path),
			fmt.Sprintf("cost     %.4f", s.Result.Cost),
		)
	} else {
		lines = append(lines, styles.Warning.Render("no path"))
	}
	lines = append(lines,
		fmt.Sprintf("expanded %d", s.Result.Expanded),
		fmt.Sprintf("steps    %d", s.Result.Steps),
	)
	if s.Verified != "" {
		lines = append(lines, "oracle   "+s.Verified)
	}
	lines = append(lines, styles.Muted.Render("run "+s.RunID))

	return styles.Box.Render(strings.Join(lines, "\n"))
}
