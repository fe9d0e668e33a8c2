package calendar

import (
	"fmt"
	"math/bits"
	"strings"
	"time"
)

// Field names one component of a decomposed date. Fields are bit flags and
// can be combined with | to request several at once.
type Field uint16

const (
	Year Field = 1 << iota
	Month
	Day
	Hour
	Minute
	Second
	Nanosecond
	Weekday
)

// Common field sets.
const (
	DateFields  = Year | Month | Day
	ClockFields = Hour | Minute | Second
	AllFields   = DateFields | ClockFields | Nanosecond | Weekday

	// numFields is the number of distinct fields.
	numFields = 8
)

var fieldNames = [numFields]string{
	"year", "month", "day", "hour", "minute", "second", "nanosecond", "weekday",
}

// index returns the slot of a single-bit field.
func (f Field) index() int {
	return bits.TrailingZeros16(uint16(f))
}

// single reports whether f names exactly one known field.
func (f Field) single() bool {
	return f != 0 && f&(f-1) == 0 && f <= Weekday
}

// Each calls fn for every field in the set, in declaration order.
func (f Field) Each(fn func(Field)) {
	for i := 0; i < numFields; i++ {
		if bit := Field(1 << i); f&bit != 0 {
			fn(bit)
		}
	}
}

func (f Field) String() string {
	if f.single() {
		return fieldNames[f.index()]
	}
	var names []string
	f.Each(func(b Field) { names = append(names, fieldNames[b.index()]) })
	return strings.Join(names, "|")
}

// ParseField parses a single field name such as "year" or "hours".
func ParseField(name string) (Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "ns" {
		return Nanosecond, nil
	}
	n = strings.TrimSuffix(n, "s")
	for i, fn := range fieldNames {
		if n == fn {
			return Field(1 << i), nil
		}
	}
	switch n {
	case "min":
		return Minute, nil
	case "sec":
		return Second, nil
	case "nano":
		return Nanosecond, nil
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Components is a sparse record of date fields. Fields that were not
// requested or set are absent, which is distinct from being zero.
type Components struct {
	set    Field
	values [numFields]int
}

// Get returns the value of f and whether it is present.
func (c Components) Get(f Field) (int, bool) {
	if !f.single() || c.set&f == 0 {
		return 0, false
	}
	return c.values[f.index()], true
}

// Value returns the value of f, or 0 when f is absent.
func (c Components) Value(f Field) int {
	v, _ := c.Get(f)
	return v
}

// Has reports whether every field in f is present.
func (c Components) Has(f Field) bool {
	return f != 0 && c.set&f == f
}

// Set returns a copy of c with f set to v. Setting a value that is not a
// single known field returns c unchanged.
func (c Components) Set(f Field, v int) Components {
	if !f.single() {
		return c
	}
	c.set |= f
	c.values[f.index()] = v
	return c
}

// Without returns a copy of c with the fields in f removed.
func (c Components) Without(f Field) Components {
	f.Each(func(b Field) { c.values[b.index()] = 0 })
	c.set &^= f
	return c
}

// Fields returns the set of present fields.
func (c Components) Fields() Field {
	return c.set
}

// IsEmpty reports whether no field is present.
func (c Components) IsEmpty() bool {
	return c.set == 0
}

func (c Components) String() string {
	var parts []string
	c.set.Each(func(b Field) {
		parts = append(parts, fmt.Sprintf("%s=%d", b, c.values[b.index()]))
	})
	return "{" + strings.Join(parts, " ") + "}"
}

// WeekdayOf converts a time.Weekday to the 1 (Sunday) .. 7 (Saturday)
// numbering used by Components.
func WeekdayOf(wd time.Weekday) int {
	return int(wd) + 1
}

// ToWeekday converts a 1..7 weekday number back to a time.Weekday.
// It reports false for numbers outside that range.
func ToWeekday(n int) (time.Weekday, bool) {
	if n < 1 || n > 7 {
		return 0, false
	}
	return time.Weekday(n - 1), true
}
