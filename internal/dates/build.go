package dates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/fecha/internal/calendar"
)

// Parsing errors.
var (
	ErrUnknownMonth   = errors.New("unknown month name")
	ErrUnknownWeekday = errors.New("unknown weekday name")
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Date returns midnight of the given day.
func (e *Editor) Date(year, month, day int) (calendar.Instant, error) {
	c := calendar.Components{}.
		Set(calendar.Year, year).
		Set(calendar.Month, month).
		Set(calendar.Day, day)
	return e.cal.Recompose(c)
}

// Time returns the given time of day on the calendar's first day,
// January 1st of year 1.
func (e *Editor) Time(hours, minutes int, seconds float64) (calendar.Instant, error) {
	whole, nanos := splitSeconds(seconds)
	c := calendar.Components{}.
		Set(calendar.Hour, hours).
		Set(calendar.Minute, minutes).
		Set(calendar.Second, whole).
		Set(calendar.Nanosecond, nanos)
	return e.cal.Recompose(c)
}

// DateTime returns the instant for a full set of components.
func (e *Editor) DateTime(year, month, day, hours, minutes int, seconds float64) (calendar.Instant, error) {
	whole, nanos := splitSeconds(seconds)
	c := calendar.Components{}.
		Set(calendar.Year, year).
		Set(calendar.Month, month).
		Set(calendar.Day, day).
		Set(calendar.Hour, hours).
		Set(calendar.Minute, minutes).
		Set(calendar.Second, whole).
		Set(calendar.Nanosecond, nanos)
	return e.cal.Recompose(c)
}

// StartOfDay returns midnight of the day containing i.
func (e *Editor) StartOfDay(i calendar.Instant) (calendar.Instant, error) {
	return e.cal.Recompose(e.cal.Decompose(i, calendar.DateFields))
}

// Today returns midnight of the current day.
func (e *Editor) Today() (calendar.Instant, error) {
	return e.StartOfDay(e.cal.Now())
}

// MonthStart returns the first day of month in the current year.
func (e *Editor) MonthStart(month int) (calendar.Instant, error) {
	today, err := e.Today()
	if err != nil {
		return calendar.Instant{}, err
	}
	first, err := e.WithDay(today, 1)
	if err != nil {
		return calendar.Instant{}, err
	}
	return e.WithMonth(first, month)
}

// ThisWeek returns the day of the current week whose weekday is target
// (1 = Sunday).
func (e *Editor) ThisWeek(target int) (calendar.Instant, error) {
	today, err := e.Today()
	if err != nil {
		return calendar.Instant{}, err
	}
	return e.WithWeekday(today, target)
}

// DaysInMonth returns the number of days of the month containing i.
func (e *Editor) DaysInMonth(i calendar.Instant) (int, error) {
	c := e.cal.Decompose(i, calendar.Year|calendar.Month)
	last, err := e.cal.Recompose(c.Set(calendar.Month, c.Value(calendar.Month)+1).Set(calendar.Day, 0))
	if err != nil {
		return 0, err
	}
	return e.Day(last), nil
}

func lookup(names []string, name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) < 3 {
		return 0, false
	}
	for i, full := range names {
		if n == full || n == full[:3] {
			return i + 1, true
		}
	}
	return 0, false
}

// ParseMonth parses a month name or its three letter abbreviation and
// returns the month number, 1 through 12.
func ParseMonth(name string) (int, error) {
	n, ok := lookup(monthNames, name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, name)
	}
	return n, nil
}

// ParseWeekday parses a weekday name or its three letter abbreviation and
// returns the weekday number, 1 (Sunday) through 7 (Saturday).
func ParseWeekday(name string) (int, error) {
	n, ok := lookup(weekdayNames, name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}
	return n, nil
}

// MonthName returns the lower case English name of month 1 through 12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month(%d)", month)
	}
	return monthNames[month-1]
}

// WeekdayName returns the lower case English name of weekday 1 through 7.
func WeekdayName(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return fmt.Sprintf("weekday(%d)", weekday)
	}
	return weekdayNames[weekday-1]
}
