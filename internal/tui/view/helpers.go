// Package view renders the month browser: the day grid, footer and overlays.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = line
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// RenderOverlay centers overlayContent and splices it over baseContent.
func RenderOverlay(baseContent, overlayContent string, width, height int, overlayBg lipgloss.Color) string {
	overlayLines := strings.Split(overlayContent, "\n")
	overlayHeight := len(overlayLines)
	if overlayHeight == 0 {
		return baseContent
	}

	overlayWidth := 0
	for _, line := range overlayLines {
		if w := lipgloss.Width(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	if overlayWidth == 0 {
		return baseContent
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	top := (height - overlayHeight) / 2
	left := (width - overlayWidth) / 2
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	for i, line := range overlayLines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > overlayWidth {
			line = ansi.Cut(line, 0, overlayWidth)
		}
		if lineWidth < overlayWidth {
			paddingStyle := lipgloss.NewStyle().Background(overlayBg)
			line += paddingStyle.Render(strings.Repeat(" ", overlayWidth-lineWidth))
		}
		line = ApplyOverlayBackgroundResets(line, overlayBg)
		overlayLines[i] = line + ansi.ResetStyle
	}

	emptyBg := lipgloss.Color("")
	baseLines := strings.Split(PadLinesWithBackground(baseContent, width, height, emptyBg), "\n")
	if len(baseLines) < height {
		for len(baseLines) < height {
			baseLines = append(baseLines, "")
		}
	}

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+overlayHeight {
			lines = append(lines, baseLines[row])
			continue
		}

		overLine := overlayLines[row-top]
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+overlayWidth, width)
		lines = append(lines, leftSlice+overLine+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// ApplyOverlayBackgroundResets reapplies the overlay background after ANSI resets.
func ApplyOverlayBackgroundResets(line string, overlayBg lipgloss.Color) string {
	bgSeq := OverlayBackgroundSeq(overlayBg)
	if bgSeq == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// OverlayBackgroundSeq returns the background escape sequence for overlayBg.
func OverlayBackgroundSeq(overlayBg lipgloss.Color) string {
	if overlayBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlayBg))).String()
}
