package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/expr"
	"github.com/javiermolinar/fecha/internal/relative"
	"github.com/javiermolinar/fecha/internal/tui/view"
)

// calGap is the space between months laid out side by side.
const calGap = 3

type calOptions struct {
	year    int
	months  int
	ordinal string
	weekday string
}

func (a *App) calCmd() *cobra.Command {
	var opts calOptions

	cmd := &cobra.Command{
		Use:   "cal [month]",
		Short: "Print a month calendar",
		Long: `Print one or more month grids. Today is underlined. With --ordinal
and --weekday the matching day of every month is highlighted and listed.

Examples:
  fecha cal
  fecha cal feb --year 2024
  fecha cal --months 3 --ordinal last --weekday friday`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.ordinal == "") != (opts.weekday == "") {
				return errors.New("--ordinal and --weekday must be used together")
			}
			if opts.months < 1 {
				return fmt.Errorf("--months must be at least 1, got %d", opts.months)
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			month := ""
			if len(args) == 1 {
				month = args[0]
			}
			out, err := a.renderCal(ev, month, opts, termWidth())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "Year (default: current year)")
	cmd.Flags().IntVar(&opts.months, "months", 1, "Number of consecutive months to print")
	cmd.Flags().StringVar(&opts.ordinal, "ordinal", "", "Highlight the nth weekday: first..fifth or last")
	cmd.Flags().StringVar(&opts.weekday, "weekday", "", "Weekday to highlight with --ordinal")
	return cmd
}

// renderCal renders the requested months, as many per row as fit in width.
func (a *App) renderCal(ev *expr.Evaluator, month string, opts calOptions, width int) (string, error) {
	ed := ev.Editor()
	today, err := ed.Today()
	if err != nil {
		return "", err
	}

	m, y := ed.Month(today), ed.Year(today)
	if month != "" {
		if m, err = parseMonthFlag(month); err != nil {
			return "", err
		}
	}
	if opts.year != 0 {
		y = opts.year
	}
	first, err := ed.Date(y, m, 1)
	if err != nil {
		return "", err
	}

	var sel *relative.Selector
	if opts.ordinal != "" {
		o, err := relative.ParseOrdinal(opts.ordinal)
		if err != nil {
			return "", err
		}
		w, err := dates.ParseWeekday(opts.weekday)
		if err != nil {
			return "", err
		}
		sel = &relative.Selector{Ordinal: o, Weekday: w}
	}

	styles := view.PlainGridStyles()
	mondayFirst := a.config.WeekStartsMonday()
	blocks := make([]string, 0, opts.months)
	var notes []string

	for i := 0; i < opts.months; i++ {
		ref, err := ev.Applier().Add(first, delta.Months(i))
		if err != nil {
			return "", err
		}
		grid, err := view.BuildMonth(ed, ref, mondayFirst)
		if err != nil {
			return "", err
		}

		var marks view.Marks
		if ed.Year(today) == grid.Year && ed.Month(today) == grid.Month {
			marks.Today = ed.Day(today)
		}
		if sel != nil {
			sel.Reference = ref
			got, err := ev.Resolver().Resolve(*sel)
			switch {
			case err == nil:
				marks.Match = ed.Day(got)
				notes = append(notes, fmt.Sprintf("%s → %s", sel, formatResult(got.Format("Mon 2006-01-02"))))
			case errors.Is(err, calendar.ErrNotFound):
				notes = append(notes, fmt.Sprintf("%s → %s", sel, formatWarn("no such day")))
			default:
				return "", err
			}
		}
		blocks = append(blocks, view.RenderMonth(grid, styles, marks))
	}

	perRow := max(1, (width+calGap)/(view.CellWidth*7+calGap))
	var b strings.Builder
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		row := make([]string, 0, 2*(end-start))
		for i, block := range blocks[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", calGap))
			}
			row = append(row, block)
		}
		if start > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	if len(notes) > 0 {
		b.WriteString("\n")
		for _, n := range notes {
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
