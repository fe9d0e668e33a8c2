package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Resolution errors.
var (
	ErrUnresolvable = errors.New("components do not resolve to a date")
	ErrNotFound     = errors.New("no matching date")
)

// Supported range of years after normalization.
const (
	MinYear = 1
	MaxYear = 9999
)

// maxMagnitude bounds every raw component handed to Recompose so that the
// arithmetic inside time.Date cannot overflow.
const maxMagnitude = 1 << 40

// maxYearMagnitude bounds the raw year separately. Years near 5.8e11 wrap
// the seconds inside time.Date back into the supported range.
const maxYearMagnitude = 1 << 31

// Provider decomposes instants into calendar components and recomposes
// components into instants, honouring a calendar system and time zone.
type Provider interface {
	// Decompose returns the requested fields of i. Fields not requested
	// are absent from the result.
	Decompose(i Instant, fields Field) Components
	// Recompose resolves c to an instant. It returns ErrUnresolvable when
	// the combination cannot be resolved.
	Recompose(c Components) (Instant, error)
	// Now returns the current instant.
	Now() Instant
}

// Gregorian is a Provider backed by the standard library's proleptic
// Gregorian calendar in a fixed location.
type Gregorian struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Gregorian provider.
type Option func(*Gregorian)

// WithLocation sets the time zone used to decompose and recompose dates.
func WithLocation(loc *time.Location) Option {
	return func(g *Gregorian) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(g *Gregorian) {
		if now != nil {
			g.now = now
		}
	}
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewGregorian returns a Gregorian provider using the local time zone and
// time.Now unless overridden by opts.
func NewGregorian(opts ...Option) *Gregorian {
	g := &Gregorian{loc: time.Local, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Location returns the provider's time zone.
func (g *Gregorian) Location() *time.Location {
	return g.loc
}

// Now implements Provider.
func (g *Gregorian) Now() Instant {
	return At(g.now()).In(g.loc)
}

// Decompose implements Provider.
func (g *Gregorian) Decompose(i Instant, fields Field) Components {
	t := i.Time().In(g.loc)
	var c Components
	fields.Each(func(f Field) {
		switch f {
		case Year:
			c = c.Set(Year, t.Year())
		case Month:
			c = c.Set(Month, int(t.Month()))
		case Day:
			c = c.Set(Day, t.Day())
		case Hour:
			c = c.Set(Hour, t.Hour())
		case Minute:
			c = c.Set(Minute, t.Minute())
		case Second:
			c = c.Set(Second, t.Second())
		case Nanosecond:
			c = c.Set(Nanosecond, t.Nanosecond())
		case Weekday:
			c = c.Set(Weekday, WeekdayOf(t.Weekday()))
		}
	})
	return c
}

// Recompose implements Provider. Absent date fields default to 1 and absent
// clock fields to 0; the weekday field is ignored. Out of range values are
// normalized the way time.Date does, so day 32 of January is February 1st.
func (g *Gregorian) Recompose(c Components) (Instant, error) {
	if c.IsEmpty() {
		return Instant{}, fmt.Errorf("%w: no fields set", ErrUnresolvable)
	}
	var tooLarge error
	c.Fields().Each(func(f Field) {
		if v := c.Value(f); v > maxMagnitude || v < -maxMagnitude {
			tooLarge = fmt.Errorf("%w: %s %d out of range", ErrUnresolvable, f, v)
		}
	})
	if tooLarge != nil {
		return Instant{}, tooLarge
	}
	if y := c.Value(Year); y > maxYearMagnitude || y < -maxYearMagnitude {
		return Instant{}, fmt.Errorf("%w: year %d out of range", ErrUnresolvable, y)
	}

	get := func(f Field, def int) int {
		if v, ok := c.Get(f); ok {
			return v
		}
		return def
	}
	t := time.Date(
		get(Year, 1),
		time.Month(get(Month, 1)),
		get(Day, 1),
		get(Hour, 0),
		get(Minute, 0),
		get(Second, 0),
		get(Nanosecond, 0),
		g.loc,
	)
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Instant{}, fmt.Errorf("%w: year %d outside %d-%d", ErrUnresolvable, y, MinYear, MaxYear)
	}
	return At(t), nil
}
