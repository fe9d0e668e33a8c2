package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_MatchShades(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#112233",
		Weekend:     "#445566",
		Match:       "#66aa44",
		Warning:     "#888888",
	}

	palette := NewPalette(base)

	if palette.MatchBg != lipgloss.Color(darkenColor(base.Match)) {
		t.Fatalf("MatchBg = %q, want %q", palette.MatchBg, darkenColor(base.Match))
	}
	if palette.MatchBgAlt != lipgloss.Color(alternateShade(darkenColor(base.Match), false)) {
		t.Fatalf("MatchBgAlt = %q, want %q", palette.MatchBgAlt, alternateShade(darkenColor(base.Match), false))
	}
	if palette.TodayBg != lipgloss.Color(muteColor(base.Today)) {
		t.Fatalf("TodayBg = %q, want %q", palette.TodayBg, muteColor(base.Today))
	}
}

func TestNewPalette_OverlayFallbacks(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#00ff00",
		Weekend:     "#0000ff",
		Match:       "#ffff00",
		Warning:     "#ff00ff",
	}

	palette := NewPalette(base)
	if palette.Overlay.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Overlay.Bg = %q, want %q", palette.Overlay.Bg, base.BgHighlight)
	}
	if palette.Overlay.Border.Dark != base.Accent {
		t.Fatalf("Overlay.Border.Dark = %q, want %q", palette.Overlay.Border.Dark, base.Accent)
	}
	if palette.Overlay.Text.Dark != base.Fg {
		t.Fatalf("Overlay.Text.Dark = %q, want %q", palette.Overlay.Text.Dark, base.Fg)
	}
}

func TestNewPalette_LightThemeInvertsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Today:       "#c97b00",
		Weekend:     "#1d8a8a",
		Match:       "#2f8f2f",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.MatchBg)) <= relativeLuminance(base.Match) {
		t.Fatalf("MatchBg luminance = %f, want greater than Match", relativeLuminance(string(palette.MatchBg)))
	}
	if relativeLuminance(string(palette.TodayBg)) <= relativeLuminance(base.Today) {
		t.Fatalf("TodayBg luminance = %f, want greater than Today", relativeLuminance(string(palette.TodayBg)))
	}
}

func TestNewPalette_NilUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	mocha, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}
	if palette.Bg != lipgloss.Color(mocha.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, mocha.Bg)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
