package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
)

func (a *App) partsCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "parts [expression...]",
		Short: "Show the components of a date",
		Long: `Decompose a date into year, month, day, hour, minute, second,
nanosecond and weekday. Without an expression the current time is used.

Examples:
  fecha parts
  fecha parts next friday --field weekday --field day`,
		RunE: func(cmd *cobra.Command, args []string) error {
			want := calendar.AllFields
			if len(fields) > 0 {
				want = 0
				for _, name := range fields {
					f, err := calendar.ParseField(name)
					if err != nil {
						return err
					}
					want |= f
				}
			}

			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			got, err := evalArgs(ev, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatHeader(got.Format(a.layout())))
			printComponents(out, ev.Editor().Decompose(got, want))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "field", nil, "Only show these fields (repeatable)")
	return cmd
}

// printComponents prints one line per present field, in field order.
func printComponents(w io.Writer, c calendar.Components) {
	c.Fields().Each(func(f calendar.Field) {
		v := c.Value(f)
		fmt.Fprintf(w, "  %s %s\n", formatLabel(fmt.Sprintf("%-10s", f)), componentValue(f, v))
	})
}

func componentValue(f calendar.Field, v int) string {
	s := strconv.Itoa(v)
	switch f {
	case calendar.Month:
		return s + " " + formatMuted("("+dates.MonthName(v)+")")
	case calendar.Weekday:
		return s + " " + formatMuted("("+dates.WeekdayName(v)+")")
	}
	return s
}
