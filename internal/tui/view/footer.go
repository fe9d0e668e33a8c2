package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW        int
	SelectionLine string
	CursorLine    string
	PromptLine    string // replaces the status line while the prompt is open
	StatusLine    string
	HelpLine      string
	Bg            lipgloss.Color
}

// FooterLines is the height of the rendered footer.
const FooterLines = 4

// RenderFooter renders the selection, cursor, status or prompt, and help lines.
// Lines wider than InnerW are truncated with an ellipsis.
func RenderFooter(state FooterViewState) string {
	status := state.StatusLine
	if state.PromptLine != "" {
		status = state.PromptLine
	}

	lines := []string{state.SelectionLine, state.CursorLine, status, state.HelpLine}
	s := ""
	for i, line := range lines {
		if state.InnerW > 0 {
			line = ansi.Truncate(line, state.InnerW, "…")
		}
		if i > 0 {
			s += "\n"
		}
		s += line
	}
	return PlaceBox(state.InnerW, FooterLines, lipgloss.Top, s, state.Bg)
}
