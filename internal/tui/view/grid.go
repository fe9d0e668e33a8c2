package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellWidth is the rendered width of one day cell.
const CellWidth = 4

// GridStyles holds the styles used by RenderMonth.
type GridStyles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Day         lipgloss.Style
	Weekend     lipgloss.Style
	Outside     lipgloss.Style
	Today       lipgloss.Style
	Cursor      lipgloss.Style
	Match       lipgloss.Style
	MatchCursor lipgloss.Style
}

// Marks are the in-month days that get special styling. Zero means none.
type Marks struct {
	Today  int
	Cursor int
	Match  int
}

// RenderMonth renders the month title, weekday header and day grid.
func RenderMonth(m Month, st GridStyles, marks Marks) string {
	gridW := CellWidth * 7
	var b strings.Builder

	b.WriteString(st.Title.Width(gridW).Align(lipgloss.Center).Render(m.Title()))
	b.WriteString("\n")

	headers := Headers(m.MondayFirst)
	for _, h := range headers {
		b.WriteString(st.Header.Width(CellWidth).Align(lipgloss.Right).Render(h + " "))
	}

	for _, week := range m.Weeks {
		b.WriteString("\n")
		for _, cell := range week {
			b.WriteString(cellStyle(cell, st, marks).Render(fmt.Sprintf("%3d ", cell.Day)))
		}
	}
	return b.String()
}

func cellStyle(cell Cell, st GridStyles, marks Marks) lipgloss.Style {
	if !cell.InMonth {
		return st.Outside
	}
	switch {
	case cell.Day == marks.Cursor && cell.Day == marks.Match:
		return st.MatchCursor
	case cell.Day == marks.Cursor:
		return st.Cursor
	case cell.Day == marks.Match:
		return st.Match
	case cell.Day == marks.Today:
		return st.Today
	case IsWeekend(cell.Weekday):
		return st.Weekend
	default:
		return st.Day
	}
}

// PlainGridStyles returns unstyled grid styles with the cursor and match
// marked by reverse video and bold text.
func PlainGridStyles() GridStyles {
	plain := lipgloss.NewStyle()
	return GridStyles{
		Title:       plain.Bold(true),
		Header:      plain,
		Day:         plain,
		Weekend:     plain,
		Outside:     plain.Faint(true),
		Today:       plain.Underline(true),
		Cursor:      plain.Reverse(true),
		Match:       plain.Bold(true),
		MatchCursor: plain.Bold(true).Reverse(true),
	}
}
