package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
	"github.com/javiermolinar/fecha/internal/tui/input"
	"github.com/javiermolinar/fecha/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showHelp := m.mode == ModeHelp
	overlay := ""
	if showHelp {
		overlay = m.renderHelpOverlay()
	}
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		OverlayContent:   overlay,
		ShowOverlay:      showHelp,
		OverlayBg:        m.styles.Palette().Overlay.Bg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	p := m.styles.Palette()
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	innerW := m.width - frameW
	if innerW <= 0 || m.height-frameH <= 0 {
		return "Terminal too small"
	}

	grid := m.renderGrid()
	footer := view.RenderFooter(m.footerViewState(innerW))

	content := lipgloss.JoinVertical(lipgloss.Left, grid, "", footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, p.Bg)
}

func (m Model) renderGrid() string {
	month, err := view.BuildMonth(m.ed, m.cursor, m.config.WeekStartsMonday())
	if err != nil {
		return m.styles.ErrorStyle.Render(err.Error())
	}
	marks := view.Marks{
		Today:  m.dayIn(month, m.today),
		Cursor: m.ed.Day(m.cursor),
	}
	if m.matchErr == nil {
		marks.Match = m.ed.Day(m.match)
	}
	return view.RenderMonth(month, m.styles.Grid, marks)
}

// dayIn returns the day of i when it falls within month, 0 otherwise.
func (m Model) dayIn(month view.Month, i calendar.Instant) int {
	if m.ed.Year(i) != month.Year || m.ed.Month(i) != month.Month {
		return 0
	}
	return m.ed.Day(i)
}

func (m Model) footerViewState(innerW int) view.FooterViewState {
	state := view.FooterViewState{
		InnerW:        innerW,
		SelectionLine: m.selectionLine(),
		CursorLine:    m.cursorLine(),
		StatusLine:    m.statusLine(),
		HelpLine:      m.help.ShortHelpView(m.keys.ShortHelp()),
		Bg:            m.styles.Palette().Bg,
	}
	if m.mode == ModePrompt {
		state.PromptLine = m.prompt.View()
		words := input.MatchingWords(m.prompt.Value(), input.Keywords)
		state.HelpLine = view.SuggestionLine(words, innerW, m.styles.HelpKeyStyle, m.styles.HelpDescStyle)
	}
	return state
}

// selectionLine describes the ordinal weekday selection and where it lands.
func (m Model) selectionLine() string {
	label := fmt.Sprintf("%s %s of %s", m.ordinal, dates.WeekdayName(m.weekday), m.cursor.Format("2006-01"))
	if m.matchErr != nil {
		if errors.Is(m.matchErr, calendar.ErrNotFound) {
			return m.styles.NotFoundStyle.Render(label + " → no such day")
		}
		return m.styles.NotFoundStyle.Render(label + " → " + m.matchErr.Error())
	}
	return m.styles.SelectionStyle.Render(label + " → " + m.match.Format("Mon Jan 2"))
}

func (m Model) cursorLine() string {
	line := m.cursor.Format("Monday, January 2 2006")
	if m.lastInput != "" {
		line += "   (" + m.lastInput + ")"
	}
	return m.styles.CursorLineStyle.Render(line)
}

func (m Model) statusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	return m.styles.OverlayStyle.Render(b.String())
}
