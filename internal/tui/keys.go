package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/relative"
	"github.com/javiermolinar/fecha/internal/tui/commands"
	"github.com/javiermolinar/fecha/internal/tui/input"
)

// KeyMap defines the key bindings of the month browser.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	Today       key.Binding
	Ordinal     key.Binding
	Weekday     key.Binding
	PrevWeekday key.Binding
	JumpMatch   key.Binding
	Prompt      key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev day")),
		Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev week")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		PrevMonth:   key.NewBinding(key.WithKeys("H", "pgup"), key.WithHelp("H", "prev month")),
		NextMonth:   key.NewBinding(key.WithKeys("L", "pgdown"), key.WithHelp("L", "next month")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Ordinal:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "0"), key.WithHelp("1-5/0", "nth/last")),
		Weekday:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "next weekday")),
		PrevWeekday: key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "prev weekday")),
		JumpMatch:   key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g", "go to match")),
		Prompt:      key.NewBinding(key.WithKeys(":", "/"), key.WithHelp(":", "expression")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ordinal, k.Weekday, k.Prompt, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today, k.JumpMatch},
		{k.Ordinal, k.Weekday, k.PrevWeekday},
		{k.Prompt, k.Copy, k.Help, k.Quit},
	}
}

// ordinalKeys maps the ordinal keys to ordinals. 0 selects the last one.
var ordinalKeys = map[string]relative.Ordinal{
	"1": relative.First,
	"2": relative.Second,
	"3": relative.Third,
	"4": relative.Fourth,
	"5": relative.Fifth,
	"0": relative.Last,
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(delta.Days(-1), "left")
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(delta.Days(1), "right")
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(delta.Days(-7), "up")
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(delta.Days(7), "down")
	case key.Matches(msg, m.keys.PrevMonth):
		return m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.shiftMonth(1)
	case key.Matches(msg, m.keys.Today):
		m.cursor = m.today
		LogCursorMove(m.cursor, "today")
		m.resolveSelection()
		return m, nil

	case key.Matches(msg, m.keys.Ordinal):
		m.ordinal = ordinalKeys[msg.String()]
		m.resolveSelection()
		return m, nil
	case key.Matches(msg, m.keys.Weekday):
		m.weekday = m.weekday%7 + 1
		m.resolveSelection()
		return m, nil
	case key.Matches(msg, m.keys.PrevWeekday):
		m.weekday = (m.weekday+5)%7 + 1
		m.resolveSelection()
		return m, nil
	case key.Matches(msg, m.keys.JumpMatch):
		if m.matchErr != nil {
			return m.setStatus("No such day in this month", true)
		}
		m.cursor = m.match
		LogCursorMove(m.cursor, "jump to match")
		return m, nil

	case key.Matches(msg, m.keys.Prompt):
		m.setMode(ModePrompt, "open prompt")
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m, commands.Copy(m.copyText())
	case key.Matches(msg, m.keys.Help):
		m.setMode(ModeHelp, "help")
		return m, nil
	}
	return m, nil
}

// handlePromptKeys handles keys while the expression prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt.Blur()
		m.setMode(ModeNormal, "cancel prompt")
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		m.prompt.Blur()
		m.setMode(ModeNormal, "submit prompt")
		if value == "" {
			return m, nil
		}
		return m, commands.Evaluate(m.ev, value)
	case "tab":
		if completed, ok := input.Autocomplete(m.prompt.Value(), input.Keywords); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleHelpKeys closes the help overlay on any of ?, esc or q.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q", "enter":
		m.setMode(ModeNormal, "close help")
	}
	return m, nil
}
