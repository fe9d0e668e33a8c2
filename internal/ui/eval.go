package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/relative"
	"github.com/javiermolinar/fecha/internal/tui"
)

func (a *App) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate a date expression",
		Long: `Evaluate a date expression and print the instant it refers to.

Examples:
  fecha eval next friday
  fecha eval last friday of next month
  fecha eval 3 days ago
  fecha eval 10 days after 2024-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			got, err := evalArgs(ev, args)
			tui.LogEval(strings.Join(args, " "), got, err)
			if err != nil {
				return err
			}
			return a.emit(cmd, got)
		},
	}
}

func (a *App) resolveCmd() *cobra.Command {
	var (
		month string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "resolve <ordinal> <weekday>",
		Short: "Find the nth weekday of a month",
		Long: `Resolve an ordinal weekday within a month. The ordinal is one of
first..fifth (or 1st..5th) or last.

Examples:
  fecha resolve last friday
  fecha resolve 2nd tuesday --month nov --year 2025`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordinal, err := relative.ParseOrdinal(args[0])
			if err != nil {
				return err
			}
			weekday, err := dates.ParseWeekday(args[1])
			if err != nil {
				return err
			}

			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			ed := ev.Editor()
			today, err := ed.Today()
			if err != nil {
				return err
			}
			m := ed.Month(today)
			if month != "" {
				if m, err = parseMonthFlag(month); err != nil {
					return err
				}
			}
			y := ed.Year(today)
			if year != 0 {
				y = year
			}
			ref, err := ed.Date(y, m, 1)
			if err != nil {
				return err
			}

			sel := relative.Selector{Reference: ref, Ordinal: ordinal, Weekday: weekday}
			got, err := ev.Resolver().Resolve(sel)
			tui.LogSelection(sel, got, err)
			if err != nil {
				return err
			}
			return a.emit(cmd, got)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month name or number (default: current month)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")
	return cmd
}

// parseMonthFlag accepts a month name or a number from 1 to 12.
func parseMonthFlag(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return n, nil
	}
	return dates.ParseMonth(s)
}

func (a *App) addCmd() *cobra.Command {
	return a.deltaCmd("add", "Add deltas to a date", false)
}

func (a *App) subCmd() *cobra.Command {
	return a.deltaCmd("sub", "Subtract deltas from a date", true)
}

func (a *App) deltaCmd(name, short string, subtract bool) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   name + " <delta>...",
		Short: short,
		Long: short + `. Deltas are applied left to right, each as
a count of one unit: years, months, days, hours, minutes or seconds.

A leading minus is read as a flag, so negative deltas go after "--".

Examples:
  fecha ` + name + ` 3d
  fecha ` + name + ` 1 month 2 days --from 2024-01-31
  fecha ` + name + ` -- -2h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deltas, err := parseDeltas(args)
			if err != nil {
				return err
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			base := ev.Editor().Now()
			if from != "" {
				if base, err = ev.Eval(from); err != nil {
					return err
				}
			}

			got := base
			for _, d := range deltas {
				if subtract {
					got, err = ev.Applier().Subtract(got, d)
				} else {
					got, err = ev.Applier().Add(got, d)
				}
				if err != nil {
					return err
				}
			}
			return a.emit(cmd, got)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Expression for the starting date (default: now)")
	return cmd
}

// parseDeltas parses deltas such as "3d" or "-2h". A bare number takes
// the unit from the following argument, so "1 month" is accepted too.
// Negative deltas only reach it after a "--" separator.
func parseDeltas(args []string) ([]delta.Delta, error) {
	deltas := make([]delta.Delta, 0, len(args))
	for i := 0; i < len(args); i++ {
		s := args[i]
		if _, err := strconv.ParseFloat(s, 64); err == nil && i+1 < len(args) {
			i++
			s += " " + args[i]
		}
		d, err := delta.Parse(s)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, d)
	}
	return deltas, nil
}

func (a *App) setCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Replace one component of a date",
		Long: `Replace the year, month, day, hour, minute, second or weekday of a date.
Out of range values roll over, so day 32 of January is February 1st.
Setting the weekday moves to that day of the same week.

Examples:
  fecha set day 1
  fecha set weekday friday --from 2024-02-14
  fecha set second 30.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := calendar.ParseField(args[0])
			if err != nil {
				return err
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			base := ev.Editor().Now()
			if from != "" {
				if base, err = ev.Eval(from); err != nil {
					return err
				}
			}
			got, err := setField(ev.Editor(), base, field, args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, got)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Expression for the starting date (default: now)")
	return cmd
}

func setField(ed *dates.Editor, i calendar.Instant, f calendar.Field, value string) (calendar.Instant, error) {
	switch f {
	case calendar.Second:
		s, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return calendar.Instant{}, fmt.Errorf("invalid seconds %q", value)
		}
		return ed.WithSeconds(i, s)
	case calendar.Month:
		m, err := parseMonthFlag(value)
		if err != nil {
			if n, aerr := strconv.Atoi(value); aerr == nil {
				return ed.WithMonth(i, n)
			}
			return calendar.Instant{}, err
		}
		return ed.WithMonth(i, m)
	case calendar.Weekday:
		w, err := dates.ParseWeekday(value)
		if err != nil {
			if n, aerr := strconv.Atoi(value); aerr == nil {
				return ed.WithWeekday(i, n)
			}
			return calendar.Instant{}, err
		}
		return ed.WithWeekday(i, w)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return calendar.Instant{}, fmt.Errorf("invalid %s %q", f, value)
	}
	switch f {
	case calendar.Year:
		return ed.WithYear(i, n)
	case calendar.Day:
		return ed.WithDay(i, n)
	case calendar.Hour:
		return ed.WithHours(i, n)
	case calendar.Minute:
		return ed.WithMinutes(i, n)
	default:
		return calendar.Instant{}, fmt.Errorf("cannot set %s", f)
	}
}
