// Package tui provides the terminal user interface for fecha.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/tui/theme"
	"github.com/javiermolinar/fecha/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Frame around the grid and footer
	AppStyle lipgloss.Style

	// Month grid
	Grid view.GridStyles

	// Footer lines
	SelectionStyle  lipgloss.Style
	NotFoundStyle   lipgloss.Style
	CursorLineStyle lipgloss.Style
	StatusStyle     lipgloss.Style
	ErrorStyle      lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	HelpSepStyle    lipgloss.Style

	// Expression prompt
	PromptStyle      lipgloss.Style
	PromptTextStyle  lipgloss.Style
	PlaceholderStyle lipgloss.Style

	// Help overlay
	OverlayStyle lipgloss.Style
	OverlayTitle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	cell := base.Width(view.CellWidth)

	return &Styles{
		palette: p,

		AppStyle: base.Padding(1, 2),

		Grid: view.GridStyles{
			Title:       base.Bold(true).Foreground(p.Accent),
			Header:      base.Foreground(p.FgMuted).Bold(true),
			Day:         cell,
			Weekend:     cell.Foreground(p.Weekend),
			Outside:     cell.Foreground(p.FgMuted).Faint(true),
			Today:       cell.Background(p.TodayBg).Foreground(p.TextOnToday).Bold(true),
			Cursor:      cell.Background(p.BgSelection).Foreground(p.Fg).Bold(true),
			Match:       cell.Background(p.MatchBg).Foreground(p.TextOnMatch).Bold(true),
			MatchCursor: cell.Background(p.MatchBgAlt).Foreground(p.TextOnMatch).Bold(true).Underline(true),
		},

		SelectionStyle:  base.Foreground(p.Match).Bold(true),
		NotFoundStyle:   base.Foreground(p.Warning),
		CursorLineStyle: base.Foreground(p.Fg),
		StatusStyle:     base.Foreground(p.FgMuted).Italic(true),
		ErrorStyle:      base.Foreground(p.Warning).Bold(true),
		HelpKeyStyle:    base.Foreground(p.Accent),
		HelpDescStyle:   base.Foreground(p.FgMuted),
		HelpSepStyle:    base.Foreground(p.BgSelection),

		PromptStyle:      base.Foreground(p.Accent).Bold(true),
		PromptTextStyle:  base.Foreground(p.Fg),
		PlaceholderStyle: base.Foreground(p.FgMuted),

		OverlayStyle: lipgloss.NewStyle().
			Background(p.Overlay.Bg).
			Foreground(p.Overlay.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Overlay.Border).
			BorderBackground(p.Overlay.Bg).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Background(p.Overlay.Bg).Foreground(p.Accent).Bold(true),
	}
}

// Palette returns the palette the styles were derived from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}
