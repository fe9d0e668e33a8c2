// Package delta applies signed, single-unit calendar offsets such as
// "3 days" or "-1.5 seconds" to instants.
package delta

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned when a unit name or value is not recognized.
var ErrUnknownUnit = errors.New("unknown delta unit")

// Unit is the calendar unit a Delta is expressed in.
type Unit int

const (
	Year Unit = iota + 1
	Month
	Day
	Hour
	Minute
	Second
)

var unitNames = map[Unit]string{
	Year:   "year",
	Month:  "month",
	Day:    "day",
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
}

var unitAliases = map[string]Unit{
	"y":   Year,
	"yr":  Year,
	"yrs": Year,
	"mo":  Month,
	"mon": Month,
	"d":   Day,
	"h":   Hour,
	"hr":  Hour,
	"hrs": Hour,
	"m":   Minute,
	"min": Minute,
	"s":   Second,
	"sec": Second,
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// ParseUnit parses a unit name. Singular, plural and short forms are
// accepted: "day", "days", "d".
func ParseUnit(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if u, ok := unitAliases[n]; ok {
		return u, nil
	}
	if len(n) > 3 {
		n = strings.TrimSuffix(n, "s")
	}
	if u, ok := unitAliases[n]; ok {
		return u, nil
	}
	for u, full := range unitNames {
		if n == full {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Delta is a signed quantity of a single unit. A negative magnitude points
// into the past.
type Delta struct {
	Magnitude float64
	Unit      Unit
}

// New returns a Delta after validating its unit.
func New(magnitude float64, unit Unit) (Delta, error) {
	if !unit.Valid() {
		return Delta{}, fmt.Errorf("%w: %s", ErrUnknownUnit, unit)
	}
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Delta{}, fmt.Errorf("invalid magnitude %v", magnitude)
	}
	return Delta{Magnitude: magnitude, Unit: unit}, nil
}

// Years returns a delta of n years.
func Years(n int) Delta { return Delta{Magnitude: float64(n), Unit: Year} }

// Months returns a delta of n months.
func Months(n int) Delta { return Delta{Magnitude: float64(n), Unit: Month} }

// Days returns a delta of n days.
func Days(n int) Delta { return Delta{Magnitude: float64(n), Unit: Day} }

// Hours returns a delta of n hours.
func Hours(n int) Delta { return Delta{Magnitude: float64(n), Unit: Hour} }

// Minutes returns a delta of n minutes.
func Minutes(n int) Delta { return Delta{Magnitude: float64(n), Unit: Minute} }

// Seconds returns a delta of s seconds. Fractions are kept.
func Seconds(s float64) Delta { return Delta{Magnitude: s, Unit: Second} }

// Negate returns the delta pointing the other way.
func (d Delta) Negate() Delta {
	return Delta{Magnitude: -d.Magnitude, Unit: d.Unit}
}

func (d Delta) String() string {
	mag := strconv.FormatFloat(d.Magnitude, 'f', -1, 64)
	unit := d.Unit.String()
	if d.Magnitude != 1 && d.Magnitude != -1 {
		unit += "s"
	}
	return mag + " " + unit
}

// Parse parses a delta such as "3 days", "-2h" or "1.5 seconds".
func Parse(s string) (Delta, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if idx <= 0 {
		return Delta{}, fmt.Errorf("invalid delta %q", s)
	}
	mag, err := strconv.ParseFloat(s[:idx], 64)
	if err != nil {
		return Delta{}, fmt.Errorf("invalid delta %q: %w", s, err)
	}
	unit, err := ParseUnit(s[idx:])
	if err != nil {
		return Delta{}, err
	}
	return New(mag, unit)
}
