package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/dates"
	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/expr"
	"github.com/javiermolinar/fecha/internal/relative"
	"github.com/javiermolinar/fecha/internal/tui/commands"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Typing an expression
	ModeHelp        // Full help overlay
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeHelp:
		return "Help"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ev     *expr.Evaluator
	ed     *dates.Editor
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   KeyMap
	help   help.Model

	// State
	mode   Mode
	today  calendar.Instant
	cursor calendar.Instant // Midnight of the selected day

	// Ordinal weekday selection, resolved within the cursor's month
	ordinal  relative.Ordinal
	weekday  int
	match    calendar.Instant
	matchErr error

	// Last evaluated expression
	lastInput  string
	lastResult calendar.Instant

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render the status as an error
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSelection sets the initial ordinal and weekday (1 = Sunday).
func WithSelection(o relative.Ordinal, weekday int) ModelOption {
	return func(m *Model) {
		m.ordinal = o
		m.weekday = weekday
	}
}

// WithCursor places the cursor on the day containing at.
func WithCursor(at calendar.Instant) ModelOption {
	return func(m *Model) {
		if day, err := m.ed.StartOfDay(at); err == nil {
			m.cursor = day
		}
	}
}

// New creates a new TUI model.
func New(ev *expr.Evaluator, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	ed := ev.Editor()
	today, err := ed.Today()
	if err != nil {
		return nil, fmt.Errorf("reading today: %w", err)
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "last friday of next month"
	ti.CharLimit = 128
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.PromptTextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSepStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSepStyle

	m := &Model{
		ev:      ev,
		ed:      ed,
		config:  cfg,
		theme:   t,
		styles:  styles,
		keys:    DefaultKeyMap(),
		help:    h,
		mode:    ModeNormal,
		today:   today,
		cursor:  today,
		ordinal: relative.First,
		weekday: ed.Weekday(today),
		prompt:  ti,
	}

	for _, opt := range opts {
		opt(m)
	}
	m.resolveSelection()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the selected day.
func (m Model) Cursor() calendar.Instant { return m.cursor }

// Match returns the resolved selection, or an error wrapping
// calendar.ErrNotFound when the month has no such day.
func (m Model) Match() (calendar.Instant, error) { return m.match, m.matchErr }

// Selector returns the ordinal weekday selection for the cursor's month.
func (m Model) Selector() (relative.Selector, error) {
	ref, err := m.ev.Resolver().InMonth(m.cursor)
	if err != nil {
		return relative.Selector{}, err
	}
	return relative.Selector{Reference: ref, Ordinal: m.ordinal, Weekday: m.weekday}, nil
}

// resolveSelection resolves the ordinal weekday within the cursor's month.
func (m *Model) resolveSelection() {
	sel, err := m.Selector()
	if err != nil {
		m.match, m.matchErr = calendar.Instant{}, err
		return
	}
	m.match, m.matchErr = m.ev.Resolver().Resolve(sel)
	LogSelection(sel, m.match, m.matchErr)
}

func (m *Model) setMode(to Mode, reason string) {
	LogModeChange(m.mode, to, reason)
	m.mode = to
}

// moveCursor moves the cursor by d, re-resolving when the month changes.
func (m Model) moveCursor(d delta.Delta, reason string) (tea.Model, tea.Cmd) {
	next, err := m.ev.Applier().Add(m.cursor, d)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	monthChanged := m.ed.Month(next) != m.ed.Month(m.cursor) || m.ed.Year(next) != m.ed.Year(m.cursor)
	m.cursor = next
	LogCursorMove(m.cursor, reason)
	if monthChanged {
		m.resolveSelection()
	}
	return m, nil
}

// shiftMonth moves the cursor by n months, keeping the day of month when it
// exists and clamping to the last day otherwise.
func (m Model) shiftMonth(n int) (tea.Model, tea.Cmd) {
	day := m.ed.Day(m.cursor)
	first, err := m.ev.Resolver().InMonth(m.cursor)
	if err == nil {
		first, err = m.ev.Applier().Add(first, delta.Months(n))
	}
	var days int
	if err == nil {
		days, err = m.ed.DaysInMonth(first)
	}
	if err == nil {
		m.cursor, err = m.ed.WithDay(first, min(day, days))
	}
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	LogCursorMove(m.cursor, fmt.Sprintf("month %+d", n))
	m.resolveSelection()
	return m, nil
}

// copyText is what y copies: the resolved match when there is one,
// otherwise the cursor day.
func (m Model) copyText() string {
	if m.matchErr == nil {
		return m.match.Format("2006-01-02")
	}
	return m.cursor.Format("2006-01-02")
}

func (m Model) setStatus(msg string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(commands.StatusTTL)
	return m, commands.ClearStatusAfter(commands.StatusTTL)
}

// runProgram drives a model until the user quits.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Run starts the TUI. The debug logger is owned by the caller.
func Run(ev *expr.Evaluator, cfg *config.Config, opts ...ModelOption) error {
	model, err := New(ev, cfg, opts...)
	if err != nil {
		return err
	}
	return runProgram(*model)
}
