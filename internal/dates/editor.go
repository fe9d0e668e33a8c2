// Package dates reads and rewrites individual components of calendar
// instants on top of a calendar.Provider.
package dates

import (
	"fmt"
	"math"

	"github.com/javiermolinar/fecha/internal/calendar"
)

// editFields is the full tuple every setter reads and writes back.
const editFields = calendar.DateFields | calendar.ClockFields | calendar.Nanosecond

// maxSeconds bounds the seconds accepted by WithSeconds.
const maxSeconds = 1 << 40

// Editor decomposes instants, replaces one component and recomposes them.
// It holds no state besides its provider and is safe for concurrent use.
type Editor struct {
	cal calendar.Provider
}

// NewEditor returns an Editor backed by cal.
func NewEditor(cal calendar.Provider) *Editor {
	return &Editor{cal: cal}
}

// Provider returns the calendar the editor works against.
func (e *Editor) Provider() calendar.Provider {
	return e.cal
}

// Decompose returns the requested fields of i.
func (e *Editor) Decompose(i calendar.Instant, fields calendar.Field) calendar.Components {
	return e.cal.Decompose(i, fields)
}

// Recompose resolves c to an instant.
func (e *Editor) Recompose(c calendar.Components) (calendar.Instant, error) {
	return e.cal.Recompose(c)
}

// Now returns the provider's current instant.
func (e *Editor) Now() calendar.Instant {
	return e.cal.Now()
}

// Components returns every field of i.
func (e *Editor) Components(i calendar.Instant) calendar.Components {
	return e.cal.Decompose(i, calendar.AllFields)
}

func (e *Editor) field(i calendar.Instant, f calendar.Field) int {
	return e.cal.Decompose(i, f).Value(f)
}

// Year returns the year of i.
func (e *Editor) Year(i calendar.Instant) int { return e.field(i, calendar.Year) }

// Month returns the month of i, 1 through 12.
func (e *Editor) Month(i calendar.Instant) int { return e.field(i, calendar.Month) }

// Day returns the day of the month of i.
func (e *Editor) Day(i calendar.Instant) int { return e.field(i, calendar.Day) }

// Hours returns the hour of i.
func (e *Editor) Hours(i calendar.Instant) int { return e.field(i, calendar.Hour) }

// Minutes returns the minute of i.
func (e *Editor) Minutes(i calendar.Instant) int { return e.field(i, calendar.Minute) }

// Weekday returns the weekday of i, 1 (Sunday) through 7 (Saturday).
func (e *Editor) Weekday(i calendar.Instant) int { return e.field(i, calendar.Weekday) }

// Seconds returns the seconds of i including the fractional part.
func (e *Editor) Seconds(i calendar.Instant) float64 {
	c := e.cal.Decompose(i, calendar.Second|calendar.Nanosecond)
	return float64(c.Value(calendar.Second)) + float64(c.Value(calendar.Nanosecond))/1e9
}

// splitSeconds splits s into whole seconds and nanoseconds, rounding to
// the nearest nanosecond.
func splitSeconds(s float64) (int, int) {
	whole := math.Floor(s)
	nanos := int(math.Round((s - whole) * 1e9))
	if nanos >= 1e9 {
		whole++
		nanos -= 1e9
	}
	return int(whole), nanos
}

// with rewrites the full component tuple of i after applying set.
func (e *Editor) with(i calendar.Instant, set func(calendar.Components) calendar.Components) (calendar.Instant, error) {
	c := set(e.cal.Decompose(i, editFields))
	out, err := e.cal.Recompose(c)
	if err != nil {
		return calendar.Instant{}, err
	}
	return out, nil
}

func (e *Editor) withField(i calendar.Instant, f calendar.Field, v int) (calendar.Instant, error) {
	out, err := e.with(i, func(c calendar.Components) calendar.Components {
		return c.Set(f, v)
	})
	if err != nil {
		return calendar.Instant{}, fmt.Errorf("setting %s to %d: %w", f, v, err)
	}
	return out, nil
}

// WithYear returns i with the year replaced.
func (e *Editor) WithYear(i calendar.Instant, year int) (calendar.Instant, error) {
	return e.withField(i, calendar.Year, year)
}

// WithMonth returns i with the month replaced. Days that do not exist in
// the new month roll over into the following one.
func (e *Editor) WithMonth(i calendar.Instant, month int) (calendar.Instant, error) {
	return e.withField(i, calendar.Month, month)
}

// WithDay returns i with the day of the month replaced.
func (e *Editor) WithDay(i calendar.Instant, day int) (calendar.Instant, error) {
	return e.withField(i, calendar.Day, day)
}

// WithHours returns i with the hour replaced.
func (e *Editor) WithHours(i calendar.Instant, hours int) (calendar.Instant, error) {
	return e.withField(i, calendar.Hour, hours)
}

// WithMinutes returns i with the minute replaced.
func (e *Editor) WithMinutes(i calendar.Instant, minutes int) (calendar.Instant, error) {
	return e.withField(i, calendar.Minute, minutes)
}

// WithSeconds returns i with the seconds, including the fractional part,
// replaced.
func (e *Editor) WithSeconds(i calendar.Instant, seconds float64) (calendar.Instant, error) {
	if math.IsNaN(seconds) || math.Abs(seconds) > maxSeconds {
		return calendar.Instant{}, fmt.Errorf("setting second to %v: %w", seconds, calendar.ErrUnresolvable)
	}
	whole, nanos := splitSeconds(seconds)
	out, err := e.with(i, func(c calendar.Components) calendar.Components {
		return c.Set(calendar.Second, whole).Set(calendar.Nanosecond, nanos)
	})
	if err != nil {
		return calendar.Instant{}, fmt.Errorf("setting second to %v: %w", seconds, err)
	}
	return out, nil
}

// WithWeekday returns the date in the same week as i whose weekday is
// target (1 = Sunday). The result may fall in a neighbouring month or
// year. The time of day is dropped.
func (e *Editor) WithWeekday(i calendar.Instant, target int) (calendar.Instant, error) {
	if _, ok := calendar.ToWeekday(target); !ok {
		return calendar.Instant{}, fmt.Errorf("weekday %d: %w", target, calendar.ErrUnresolvable)
	}
	c := e.cal.Decompose(i, calendar.DateFields|calendar.Weekday)
	day := c.Value(calendar.Day) + target - c.Value(calendar.Weekday)
	return e.cal.Recompose(c.Set(calendar.Day, day))
}
