// Package calendar defines the calendar primitives fecha is built on: the
// Instant value, sparse date Components and the Provider capability that
// converts between the two.
package calendar

import (
	"math"
	"time"
)

// referenceEpoch is the origin of Instant.Interval.
var referenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Instant is an immutable point in time with nanosecond precision.
// The zero Instant is the reference epoch's zero time.Time and reports IsZero.
type Instant struct {
	t time.Time
}

// At returns the Instant for t. The monotonic clock reading is dropped so
// that instants compare by wall time only.
func At(t time.Time) Instant {
	return Instant{t: t.Round(0)}
}

// FromInterval returns the Instant that lies the given number of seconds
// after the reference epoch (2001-01-01T00:00:00Z).
func FromInterval(seconds float64) Instant {
	whole := math.Floor(seconds)
	nanos := int64(math.Round((seconds - whole) * 1e9))
	return Instant{t: time.Unix(referenceEpoch.Unix()+int64(whole), nanos).UTC()}
}

// Time returns the instant as a time.Time.
func (i Instant) Time() time.Time {
	return i.t
}

// In returns the same instant expressed in loc.
func (i Instant) In(loc *time.Location) Instant {
	return Instant{t: i.t.In(loc)}
}

// Interval returns the offset from the reference epoch in seconds.
func (i Instant) Interval() float64 {
	secs := i.t.Unix() - referenceEpoch.Unix()
	return float64(secs) + float64(i.t.Nanosecond())/1e9
}

// Equal reports whether both instants denote the same point in time.
func (i Instant) Equal(o Instant) bool {
	return i.t.Equal(o.t)
}

// Before reports whether i is before o.
func (i Instant) Before(o Instant) bool {
	return i.t.Before(o.t)
}

// After reports whether i is after o.
func (i Instant) After(o Instant) bool {
	return i.t.After(o.t)
}

// Sub returns i-o.
func (i Instant) Sub(o Instant) time.Duration {
	return i.t.Sub(o.t)
}

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// Format formats the instant using a time layout.
func (i Instant) Format(layout string) string {
	return i.t.Format(layout)
}

func (i Instant) String() string {
	return i.t.Format(time.RFC3339Nano)
}
