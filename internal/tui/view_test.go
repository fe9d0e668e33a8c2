package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/expr"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

func plainView(t *testing.T, m Model) string {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	return ansi.Strip(m.View())
}

func TestView_Loading(t *testing.T) {
	if got := newTestModel(t).View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	m := press(t, newTestModel(t), tea.WindowSizeMsg{Width: 3, Height: 2})
	if got := plainView(t, m); !strings.Contains(got, "Terminal too small") {
		t.Errorf("View() = %q", got)
	}
}

func TestView_MonthAndFooter(t *testing.T) {
	m := press(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24})
	out := plainView(t, m)

	for _, want := range []string{
		"February 2024",
		"Su  Mo  Tu  We  Th  Fr  Sa",
		"first wednesday of 2024-02 → Wed Feb 7",
		"Wednesday, February 14 2024",
		"quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_NotFoundSelection(t *testing.T) {
	m := press(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24}, runes("5"))
	out := plainView(t, m)
	if !strings.Contains(out, "fifth wednesday of 2024-02 → no such day") {
		t.Errorf("view missing not-found line:\n%s", out)
	}
}

func TestView_MondayFirst(t *testing.T) {
	m := newTestModel(t)
	m.config.Calendar.WeekStart = "monday"
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if out := plainView(t, m); !strings.Contains(out, "Mo  Tu  We  Th  Fr  Sa  Su") {
		t.Errorf("view missing monday-first header:\n%s", out)
	}
}

func TestView_PromptSuggestions(t *testing.T) {
	m := press(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24}, runes(":"), runes("th"))
	out := plainView(t, m)
	for _, want := range []string{": th", "this", "third", "thursday"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m := press(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24}, runes("?"))
	out := plainView(t, m)
	for _, want := range []string{"Keys", "prev month", "go to match"} {
		if !strings.Contains(out, want) {
			t.Errorf("help overlay missing %q:\n%s", want, out)
		}
	}
}

func TestView_LastInput(t *testing.T) {
	m := newTestModel(t)
	m.lastInput = "next friday"
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if out := plainView(t, m); !strings.Contains(out, "(next friday)") {
		t.Errorf("view missing last input:\n%s", out)
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	th := &theme.Theme{
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
	styles := NewStyles(th)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != lipgloss.Color(want) {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "AppStyle", styles.AppStyle, th.Bg)
	assertBg(t, "Grid.Day", styles.Grid.Day, th.Bg)
	assertBg(t, "Grid.Weekend", styles.Grid.Weekend, th.Bg)
	assertBg(t, "Grid.Cursor", styles.Grid.Cursor, th.BgSelection)
	assertBg(t, "SelectionStyle", styles.SelectionStyle, th.Bg)
	assertBg(t, "HelpKeyStyle", styles.HelpKeyStyle, th.Bg)
	if styles.Grid.Match.GetBackground() == styles.Grid.Day.GetBackground() {
		t.Error("match cells should have their own background")
	}
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	setDebugOutput(&buf, nil)
	t.Cleanup(CloseDebugLogger)

	LogEval("today", date(2024, 2, 14), nil)
	LogEval("fifth monday of feb", calendar.Instant{}, calendar.ErrNotFound)
	LogModeChange(ModeNormal, ModePrompt, "open prompt")

	out := buf.String()
	for _, want := range []string{
		`"msg":"EVAL"`,
		`"input":"today"`,
		`"error":"` + calendar.ErrNotFound.Error() + `"`,
		`"from":"Normal"`,
		`"to":"Prompt"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %s:\n%s", want, out)
		}
	}
}

func TestDebugLogger_DisabledByDefault(t *testing.T) {
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger(false) error: %v", err)
	}
	// Discarded; must not panic.
	LogError("test", calendar.ErrUnresolvable)
}

func TestRun_LeavesDebugLoggerOpen(t *testing.T) {
	var buf bytes.Buffer
	setDebugOutput(&buf, nil)
	t.Cleanup(CloseDebugLogger)

	orig := runProgram
	t.Cleanup(func() { runProgram = orig })
	var ran tea.Model
	runProgram = func(m tea.Model) error {
		ran = m
		return nil
	}

	ev := expr.NewEvaluator(calendar.NewGregorian(
		calendar.WithLocation(time.UTC),
		calendar.WithClock(calendar.Fixed(valentines)),
	))
	if err := Run(ev, config.Default()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if _, ok := ran.(Model); !ok {
		t.Fatalf("program ran %T, want Model", ran)
	}

	LogCommand("after-tui", nil)
	if !strings.Contains(buf.String(), `"after-tui"`) {
		t.Errorf("debug log closed by Run:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "DEBUG_END") {
		t.Errorf("Run should not end the debug log:\n%s", buf.String())
	}
}
