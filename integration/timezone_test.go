package integration

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/expr"
)

// lateMarch is Easter Sunday evening in UTC and already Monday April 1st
// east of Greenwich.
var lateMarch = time.Date(2024, time.March, 31, 23, 30, 0, 0, time.UTC)

func evaluatorIn(t *testing.T, zone string, now time.Time) *expr.Evaluator {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	if err != nil {
		t.Fatalf("LoadLocation(%q) error: %v", zone, err)
	}
	return expr.NewEvaluator(calendar.NewGregorian(
		calendar.WithLocation(loc),
		calendar.WithClock(calendar.Fixed(now)),
	))
}

func TestTimezone_CalendarDayFollowsZone(t *testing.T) {
	tests := []struct {
		zone  string
		input string
		want  string
	}{
		{"UTC", "today", "2024-03-31"},
		{"Asia/Tokyo", "today", "2024-04-01"},
		{"America/Los_Angeles", "today", "2024-03-31"},
		{"UTC", "last friday of this month", "2024-03-29"},
		{"Asia/Tokyo", "last friday of this month", "2024-04-26"},
		{"America/Los_Angeles", "last friday of this month", "2024-03-29"},
		{"UTC", "first monday of next month", "2024-04-01"},
		{"Asia/Tokyo", "first monday of next month", "2024-05-06"},
		{"Asia/Tokyo", "tomorrow", "2024-04-02"},
	}

	for _, tt := range tests {
		t.Run(tt.zone+"/"+tt.input, func(t *testing.T) {
			ev := evaluatorIn(t, tt.zone, lateMarch)
			got, err := ev.Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.input, err)
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("Eval(%q) = %s, want %s", tt.input, s, tt.want)
			}
			if got.Time().Location().String() != tt.zone {
				t.Errorf("result location = %s, want %s", got.Time().Location(), tt.zone)
			}
		})
	}
}

func TestTimezone_DayDeltaAcrossDST(t *testing.T) {
	// Clocks in New York jump from 02:00 to 03:00 on 2024-03-10.
	ev := evaluatorIn(t, "America/New_York", time.Date(2024, time.March, 9, 17, 0, 0, 0, time.UTC))
	ed := ev.Editor()

	start, err := ev.Eval("today")
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	start, err = ed.WithHours(start, 12)
	if err != nil {
		t.Fatalf("WithHours() error: %v", err)
	}

	// A calendar day keeps the wall clock, so only 23 hours elapse.
	got, err := ev.Applier().Add(start, delta.Days(1))
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if ed.Day(got) != 10 || ed.Hours(got) != 12 {
		t.Errorf("got %s, want 2024-03-10 12:00", got)
	}
	if d := got.Sub(start); d != 23*time.Hour {
		t.Errorf("elapsed = %v, want 23h", d)
	}

	// Hours are wall clock too: 24 hours later is 12:00 the next day.
	byHours, err := ev.Applier().Add(start, delta.Hours(24))
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if !byHours.Equal(got) {
		t.Errorf("24 hours = %s, want %s", byHours, got)
	}
}

func TestTimezone_ResolutionErrorsAreZoneIndependent(t *testing.T) {
	for _, zone := range []string{"UTC", "Asia/Tokyo", "America/Los_Angeles"} {
		ev := evaluatorIn(t, zone, lateMarch)
		_, err := ev.Eval("fifth monday of feb 2024")
		if !errors.Is(err, calendar.ErrNotFound) {
			t.Errorf("%s: error = %v, want ErrNotFound", zone, err)
		}
	}
}
