package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/relative"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "fecha-debug.log"

var (
	debugMu   sync.Mutex
	debugLog  = slog.New(slog.DiscardHandler)
	debugFile io.Closer
	debugOn   bool
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// Entries are written as JSON lines to DebugLogPath.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	setDebugOutput(f, f)

	logger().Info("DEBUG_START", "log_file", DebugLogPath, "time", time.Now().Format(time.RFC3339))
	return nil
}

// setDebugOutput sends debug entries to w. closer is closed by CloseDebugLogger.
func setDebugOutput(w io.Writer, closer io.Closer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugLog = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	debugFile = closer
	debugOn = true
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugOn {
		return
	}
	debugLog.Info("DEBUG_END", "time", time.Now().Format(time.RFC3339))
	if debugFile != nil {
		_ = debugFile.Close()
	}
	debugLog = slog.New(slog.DiscardHandler)
	debugFile = nil
	debugOn = false
}

func logger() *slog.Logger {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugLog
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	logger().Debug("KEY_PRESS", "key", msg.String(), "type", int(msg.Type))
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	logger().Debug("MODE_CHANGE", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(cursor calendar.Instant, reason string) {
	logger().Debug("CURSOR_MOVE", "cursor", cursor.Format("2006-01-02"), "reason", reason)
}

// LogSelection logs the outcome of resolving the ordinal weekday selection.
func LogSelection(sel relative.Selector, got calendar.Instant, err error) {
	if err != nil {
		logger().Debug("SELECTION", "selector", sel.String(), "error", err.Error())
		return
	}
	logger().Debug("SELECTION", "selector", sel.String(), "date", got.Format("2006-01-02"))
}

// LogEval logs an expression evaluation.
func LogEval(input string, got calendar.Instant, err error) {
	if err != nil {
		logger().Debug("EVAL", "input", input, "error", err.Error())
		return
	}
	logger().Debug("EVAL", "input", input, "result", got.String())
}

// LogCommand logs a CLI command invocation.
func LogCommand(name string, args []string) {
	logger().Info("COMMAND", "name", name, "args", args)
}

// LogError logs an error.
func LogError(context string, err error) {
	logger().Error("ERROR", "context", context, "error", err.Error())
}
