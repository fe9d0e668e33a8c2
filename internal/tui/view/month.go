package view

import (
	"strconv"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
)

// Cell is one day of a month grid.
type Cell struct {
	Day     int
	Weekday int  // 1 = Sunday
	InMonth bool // false for leading and trailing days of adjacent months
}

// Month is a month laid out as whole weeks.
type Month struct {
	Year        int
	Month       int
	Days        int
	MondayFirst bool
	Weeks       [][]Cell
}

// BuildMonth lays out the month containing ref. Leading and trailing cells
// are filled with days from the adjacent months.
func BuildMonth(ed *dates.Editor, ref calendar.Instant, mondayFirst bool) (Month, error) {
	c := ed.Decompose(ref, calendar.Year|calendar.Month)
	year, month := c.Value(calendar.Year), c.Value(calendar.Month)

	first, err := ed.Date(year, month, 1)
	if err != nil {
		return Month{}, err
	}
	days, err := ed.DaysInMonth(first)
	if err != nil {
		return Month{}, err
	}
	// Day 0 normalizes to the last day of the previous month.
	prevLast, err := ed.Date(year, month, 0)
	if err != nil {
		return Month{}, err
	}
	prevDays := ed.Day(prevLast)

	offset := Column(ed.Weekday(first), mondayFirst)
	rows := (offset + days + 6) / 7

	m := Month{Year: year, Month: month, Days: days, MondayFirst: mondayFirst}
	for r := 0; r < rows; r++ {
		week := make([]Cell, 7)
		for col := range week {
			n := r*7 + col - offset + 1
			cell := Cell{Day: n, Weekday: WeekdayAt(col, mondayFirst), InMonth: true}
			switch {
			case n < 1:
				cell.Day = prevDays + n
				cell.InMonth = false
			case n > days:
				cell.Day = n - days
				cell.InMonth = false
			}
			week[col] = cell
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m, nil
}

// Column returns the grid column, 0 through 6, of weekday.
func Column(weekday int, mondayFirst bool) int {
	if mondayFirst {
		return (weekday + 5) % 7
	}
	return weekday - 1
}

// WeekdayAt returns the weekday shown in column col.
func WeekdayAt(col int, mondayFirst bool) int {
	if mondayFirst {
		return (col+1)%7 + 1
	}
	return col + 1
}

// Headers returns two letter weekday labels in column order.
func Headers(mondayFirst bool) []string {
	labels := make([]string, 7)
	for col := range labels {
		name := dates.WeekdayName(WeekdayAt(col, mondayFirst))
		labels[col] = string(name[0]-'a'+'A') + name[1:2]
	}
	return labels
}

// Title returns "February 2024".
func (m Month) Title() string {
	name := dates.MonthName(m.Month)
	return string(name[0]-'a'+'A') + name[1:] + " " + strconv.Itoa(m.Year)
}

// IsWeekend reports whether weekday is Saturday or Sunday.
func IsWeekend(weekday int) bool {
	return weekday == 1 || weekday == 7
}
