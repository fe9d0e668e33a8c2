// Package relative resolves ordinal weekday expressions such as "the last
// Friday" or "the second Monday" within the month of a reference date.
package relative

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
)

// Ordinal selects an occurrence of a weekday within a month.
type Ordinal int

const (
	First  Ordinal = 0
	Second Ordinal = 1
	Third  Ordinal = 2
	Fourth Ordinal = 3
	Fifth  Ordinal = 4
	Last   Ordinal = -1
)

// lastCandidates are the ordinal indices tried, in order, when resolving Last.
var lastCandidates = []Ordinal{5, 4, 3, 2, 1}

var ordinalNames = map[string]Ordinal{
	"first":  First,
	"1st":    First,
	"second": Second,
	"2nd":    Second,
	"third":  Third,
	"3rd":    Third,
	"fourth": Fourth,
	"4th":    Fourth,
	"fifth":  Fifth,
	"5th":    Fifth,
	"last":   Last,
}

// Valid reports whether o is First through Fifth or Last.
func (o Ordinal) Valid() bool {
	return o == Last || (o >= First && o <= Fifth)
}

func (o Ordinal) String() string {
	switch o {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	case Fifth:
		return "fifth"
	case Last:
		return "last"
	default:
		return fmt.Sprintf("ordinal(%d)", int(o))
	}
}

// ParseOrdinal parses "first", "2nd", "last" and so on.
func ParseOrdinal(s string) (Ordinal, error) {
	o, ok := ordinalNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown ordinal %q", s)
	}
	return o, nil
}

// Selector names an occurrence of a weekday relative to a reference date.
// Weekday uses 1 (Sunday) through 7 (Saturday).
type Selector struct {
	Reference calendar.Instant
	Ordinal   Ordinal
	Weekday   int
}

func (s Selector) String() string {
	return fmt.Sprintf("%s %s of %s", s.Ordinal, dates.WeekdayName(s.Weekday), s.Reference.Format("2006-01"))
}

// Resolver computes the date a Selector refers to.
type Resolver struct {
	ed *dates.Editor
}

// NewResolver returns a Resolver working on ed's calendar.
func NewResolver(ed *dates.Editor) *Resolver {
	return &Resolver{ed: ed}
}

// Resolve returns the date sel refers to, at midnight. Occurrences are
// counted from the week of the reference date: when the target weekday has
// already passed in that week, the first occurrence is the one in the next
// week. Resolve returns calendar.ErrNotFound when the occurrence falls
// outside the reference month, for example a fifth Monday in a month that
// only has four.
//
// Last is resolved by trying ordinal indices 5 down to 1 and keeping the
// first one that stays within the month.
func (r *Resolver) Resolve(sel Selector) (calendar.Instant, error) {
	if !sel.Ordinal.Valid() {
		return calendar.Instant{}, fmt.Errorf("%w: invalid ordinal %d", calendar.ErrNotFound, int(sel.Ordinal))
	}
	if _, ok := calendar.ToWeekday(sel.Weekday); !ok {
		return calendar.Instant{}, fmt.Errorf("%w: invalid weekday %d", calendar.ErrNotFound, sel.Weekday)
	}

	if sel.Ordinal != Last {
		return r.resolve(sel.Reference, sel.Ordinal, sel.Weekday, sel)
	}
	for _, o := range lastCandidates {
		if got, err := r.resolve(sel.Reference, o, sel.Weekday, sel); err == nil {
			return got, nil
		}
	}
	return calendar.Instant{}, fmt.Errorf("%w: %s", calendar.ErrNotFound, sel)
}

func (r *Resolver) resolve(ref calendar.Instant, ordinal Ordinal, weekday int, sel Selector) (calendar.Instant, error) {
	c := r.ed.Decompose(ref, calendar.DateFields|calendar.Weekday)
	current := c.Value(calendar.Weekday)
	month := c.Value(calendar.Month)

	n := int(ordinal)
	if weekday < current {
		n++
	}
	day := c.Value(calendar.Day) + weekday + 7*n - current

	got, err := r.ed.Recompose(c.Without(calendar.Weekday).Set(calendar.Day, day))
	if err != nil {
		return calendar.Instant{}, fmt.Errorf("%w: %s: %w", calendar.ErrNotFound, sel, err)
	}
	if r.ed.Month(got) != month {
		return calendar.Instant{}, fmt.Errorf("%w: %s", calendar.ErrNotFound, sel)
	}
	return got, nil
}

// InMonth returns the first day of the month containing ref, so that
// selectors count occurrences from the start of the month.
func (r *Resolver) InMonth(ref calendar.Instant) (calendar.Instant, error) {
	c := r.ed.Decompose(ref, calendar.Year|calendar.Month)
	return r.ed.Recompose(c.Set(calendar.Day, 1))
}
