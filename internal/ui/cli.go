// Package ui implements the fecha command line.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/expr"
	"github.com/javiermolinar/fecha/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time

	// Global flags
	debug   bool
	tz      string
	noColor bool
	copy    bool
	format  string
}

// Option configures an App.
type Option func(*App)

// WithClock fixes the clock used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "fecha",
		Short: "Calendar arithmetic from the command line",
		Long: `Fecha evaluates date expressions, applies deltas to dates and
resolves ordinal weekdays such as "the last Friday of the month".

Without a subcommand it opens the interactive month browser.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.before,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			tui.CloseDebugLogger()
		},
		RunE: a.runTUI,
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	flags.StringVar(&a.tz, "tz", "", "Time zone (IANA name, default from config)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&a.copy, "copy", cfg.Output.Copy, "Copy the result to the clipboard")
	flags.StringVar(&a.format, "format", "", "Output layout in Go time format (default from config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.evalCmd())
	a.root.AddCommand(a.resolveCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.subCmd())
	a.root.AddCommand(a.partsCmd())
	a.root.AddCommand(a.setCmd())
	a.root.AddCommand(a.calCmd())
	a.root.AddCommand(a.tuiCmd())

	return a
}

func (a *App) before(cmd *cobra.Command, args []string) error {
	if a.noColor || !a.config.Output.Color {
		DisableColor()
	}
	if err := tui.InitDebugLogger(a.debug); err != nil {
		return err
	}
	tui.LogCommand(cmd.Name(), args)
	return nil
}

// location returns the zone from --tz, falling back to the config.
func (a *App) location() (*time.Location, error) {
	if a.tz != "" {
		loc, err := time.LoadLocation(a.tz)
		if err != nil {
			return nil, fmt.Errorf("invalid --tz %q: %w", a.tz, err)
		}
		return loc, nil
	}
	return a.config.Location()
}

// evaluator builds an evaluator over the configured calendar.
func (a *App) evaluator() (*expr.Evaluator, error) {
	loc, err := a.location()
	if err != nil {
		return nil, err
	}
	return expr.NewEvaluator(calendar.NewGregorian(
		calendar.WithLocation(loc),
		calendar.WithClock(a.now),
	)), nil
}

// evalArgs evaluates the words of args as one expression. An empty args
// means now.
func evalArgs(ev *expr.Evaluator, args []string) (calendar.Instant, error) {
	if len(args) == 0 {
		return ev.Editor().Now(), nil
	}
	return ev.Eval(strings.Join(args, " "))
}

func (a *App) layout() string {
	if a.format != "" {
		return a.format
	}
	return a.config.Output.Format
}

// emit prints i in the output layout and copies it when --copy is set.
func (a *App) emit(cmd *cobra.Command, i calendar.Instant) error {
	text := i.Format(a.layout())
	fmt.Fprintln(cmd.OutOrStdout(), formatResult(text))
	if !a.copy {
		return nil
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("copied to clipboard"))
	return nil
}

func (a *App) runTUI(_ *cobra.Command, _ []string) error {
	ev, err := a.evaluator()
	if err != nil {
		return err
	}
	return tui.Run(ev, a.config)
}

func (a *App) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse months interactively",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fecha %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects standard output and error, for tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
