package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// SuggestionLine joins completion candidates into a single line no wider
// than width. Candidates that do not fit are summarized as "+N".
func SuggestionLine(words []string, width int, word, more lipgloss.Style) string {
	if len(words) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for i, w := range words {
		sep := 0
		if i > 0 {
			sep = 2
		}
		rest := len(words) - i - 1
		reserve := 0
		if rest > 0 {
			reserve = 2 + len(strconv.Itoa(rest))
		}
		ww := runewidth.StringWidth(w)
		if used+sep+ww+reserve > width {
			if i == 0 {
				return word.Render(runewidth.Truncate(w, width, "…"))
			}
			b.WriteString(more.Render(" +" + strconv.Itoa(len(words)-i)))
			return b.String()
		}
		if sep > 0 {
			b.WriteString("  ")
		}
		b.WriteString(word.Render(w))
		used += sep + ww
	}
	return b.String()
}
