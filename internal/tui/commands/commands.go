// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/expr"
)

// EvalResultMsg is sent when an expression has been evaluated.
type EvalResultMsg struct {
	Input   string
	Instant calendar.Instant
	Err     error
}

// CopiedMsg is sent when text was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// StatusTTL is how long a status message stays visible.
const StatusTTL = 3 * time.Second

// Evaluate evaluates input with ev.
func Evaluate(ev *expr.Evaluator, input string) tea.Cmd {
	return func() tea.Msg {
		got, err := ev.Eval(input)
		return EvalResultMsg{Input: input, Instant: got, Err: err}
	}
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// Copy writes text to the system clipboard.
func Copy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return CopiedMsg{Text: text}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
