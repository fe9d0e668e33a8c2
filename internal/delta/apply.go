package delta

import (
	"fmt"
	"math"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
)

// maxMagnitude bounds the magnitudes After converts to integers.
const maxMagnitude = 1 << 40

// maxYears bounds year deltas, which time.Date turns into seconds.
const maxYears = 1 << 31

// Applier applies deltas to instants by rewriting the matching component.
// Month and day overflow is normalized by the underlying calendar.
type Applier struct {
	ed *dates.Editor
}

// NewApplier returns an Applier that edits instants with ed.
func NewApplier(ed *dates.Editor) *Applier {
	return &Applier{ed: ed}
}

// After returns i moved forward by d. Integer units use the magnitude
// truncated toward zero; seconds keep their fraction.
//
// After panics if d carries a unit outside the closed set of units, which
// can only happen by building a Delta literal by hand.
func (a *Applier) After(d Delta, i calendar.Instant) (calendar.Instant, error) {
	if math.IsNaN(d.Magnitude) || math.Abs(d.Magnitude) > maxMagnitude {
		return calendar.Instant{}, fmt.Errorf("applying %s: %w", d, calendar.ErrUnresolvable)
	}
	n := int(d.Magnitude)

	switch d.Unit {
	case Year:
		if n > maxYears || n < -maxYears {
			return calendar.Instant{}, fmt.Errorf("applying %s: %w", d, calendar.ErrUnresolvable)
		}
		return a.ed.WithYear(i, a.ed.Year(i)+n)
	case Month:
		return a.ed.WithMonth(i, a.ed.Month(i)+n)
	case Day:
		return a.ed.WithDay(i, a.ed.Day(i)+n)
	case Hour:
		return a.ed.WithHours(i, a.ed.Hours(i)+n)
	case Minute:
		return a.ed.WithMinutes(i, a.ed.Minutes(i)+n)
	case Second:
		return a.ed.WithSeconds(i, a.ed.Seconds(i)+d.Magnitude)
	default:
		panic(fmt.Sprintf("delta: unknown unit %d", int(d.Unit)))
	}
}

// Before returns i moved backward by d.
func (a *Applier) Before(d Delta, i calendar.Instant) (calendar.Instant, error) {
	return a.After(d.Negate(), i)
}

// FromNow applies d to the provider's current instant.
func (a *Applier) FromNow(d Delta) (calendar.Instant, error) {
	return a.After(d, a.ed.Now())
}

// Ago applies the negation of d to the provider's current instant.
func (a *Applier) Ago(d Delta) (calendar.Instant, error) {
	return a.FromNow(d.Negate())
}

// Add is i + d.
func (a *Applier) Add(i calendar.Instant, d Delta) (calendar.Instant, error) {
	return a.After(d, i)
}

// Subtract is i - d.
func (a *Applier) Subtract(i calendar.Instant, d Delta) (calendar.Instant, error) {
	return a.Before(d, i)
}

// Sum applies each delta in order, stopping at the first one that fails.
func (a *Applier) Sum(i calendar.Instant, deltas ...Delta) (calendar.Instant, error) {
	out := i
	for _, d := range deltas {
		var err error
		out, err = a.After(d, out)
		if err != nil {
			return calendar.Instant{}, err
		}
	}
	return out, nil
}
