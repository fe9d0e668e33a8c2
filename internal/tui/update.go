package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-8, 10)
		return m, nil

	case commands.EvalResultMsg:
		LogEval(msg.Input, msg.Instant, msg.Err)
		if msg.Err != nil {
			LogError("eval", msg.Err)
			return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		}
		day, err := m.ed.StartOfDay(msg.Instant)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Error: %v", err), true)
		}
		m.lastInput = msg.Input
		m.lastResult = msg.Instant
		m.cursor = day
		LogCursorMove(m.cursor, "eval")
		m.resolveSelection()
		return m.setStatus(fmt.Sprintf("%s → %s", msg.Input, msg.Instant.Format(m.config.Output.Format)), false)

	case commands.CopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %s", msg.Text), false)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if m.statusMsg != "" && !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
