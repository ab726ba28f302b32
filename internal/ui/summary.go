// Package ui renders the human-readable outcome of a command.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Action describes what happened to a workspace file.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
)

// Summary collects file actions and prints them as aligned rows.
type Summary struct {
	out  io.Writer
	rows []row

	title   lipgloss.Style
	actions map[Action]lipgloss.Style
}

type row struct {
	action Action
	path   string
}

// NewSummary creates a summary that renders to out. Colors are only used
// when out is a terminal.
func NewSummary(out io.Writer) *Summary {
	r := lipgloss.NewRenderer(out)
	return &Summary{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		actions: map[Action]lipgloss.Style{
			ActionCreated: r.NewStyle().Foreground(lipgloss.Color("2")),
			ActionUpdated: r.NewStyle().Foreground(lipgloss.Color("3")),
			ActionSkipped: r.NewStyle().Faint(true),
		},
	}
}

// Add records an action on path.
func (s *Summary) Add(action Action, path string) {
	s.rows = append(s.rows, row{action: action, path: path})
}

// Render prints the title followed by one row per recorded action.
// Nothing is printed when no action was recorded.
func (s *Summary) Render(title string) error {
	if len(s.rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(s.out, s.title.Render(title)); err != nil {
		return err
	}
	width := 0
	for _, r := range s.rows {
		width = max(width, len(r.action))
	}
	for _, r := range s.rows {
		// Pad before styling so escape codes do not skew alignment.
		label := fmt.Sprintf("%-*s", width, r.action)
		if _, err := fmt.Fprintf(s.out, "  %s  %s\n", s.actions[r.action].Render(label), r.path); err != nil {
			return err
		}
	}
	return nil
}
