// Package render is a stateless terminal formatting helper for reports.
// Styles are values passed in, never process-wide state.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"vst-go/internal/staging"
)

// Styles holds the lipgloss styles used for reports. A zero Style renders
// plain text, so the disabled set is just the zero value.
type Styles struct {
	Add    lipgloss.Style
	Del    lipgloss.Style
	Hunk   lipgloss.Style
	Header lipgloss.Style
	Notice lipgloss.Style
}

// NewStyles returns colored styles when enabled, plain ones otherwise.
func NewStyles(enabled bool) Styles {
	if !enabled {
		return Styles{}
	}
	return Styles{
		Add:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Del:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Hunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Header: lipgloss.NewStyle().Bold(true),
		Notice: lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled resolves a color mode ("auto", "always", "never") against
// whether stdout is a terminal.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// Comparison writes a human-readable report for a comparison result.
func Comparison(w io.Writer, c *staging.Comparison, s Styles) {
	switch c.Kind {
	case staging.NewFile:
		fmt.Fprintln(w, s.Notice.Render(fmt.Sprintf("new file: %s (no counterpart at %s)", c.StagedPath, c.CanonicalPath)))
		for _, line := range c.Preview {
			fmt.Fprintln(w, s.Add.Render("+"+line))
		}
	case staging.Identical:
		fmt.Fprintln(w, s.Notice.Render(fmt.Sprintf("identical: %s matches %s", c.StagedPath, c.CanonicalPath)))
	case staging.Differs:
		UnifiedDiff(w, c.UnifiedDiff, s)
	}
}

// UnifiedDiff colorizes a unified diff line by line.
func UnifiedDiff(w io.Writer, diff string, s Styles) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(w, s.Header.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, s.Hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, s.Add.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, s.Del.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
