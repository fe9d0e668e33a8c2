package relative

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
)

func newTestResolver() *Resolver {
	cal := calendar.NewGregorian(
		calendar.WithLocation(time.UTC),
		calendar.WithClock(calendar.Fixed(time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))),
	)
	return NewResolver(dates.NewEditor(cal))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name      string
		reference time.Time
		ordinal   Ordinal
		weekday   int
		want      time.Time
	}{
		{
			name:      "last friday of february 2024",
			reference: day(2024, time.February, 1),
			ordinal:   Last,
			weekday:   6,
			want:      day(2024, time.February, 23),
		},
		{
			name:      "first monday of january 2024",
			reference: day(2024, time.January, 1),
			ordinal:   First,
			weekday:   2,
			want:      day(2024, time.January, 1),
		},
		{
			name:      "third wednesday counts the reference week",
			reference: day(2024, time.January, 3), // Wednesday
			ordinal:   Third,
			weekday:   4,
			want:      day(2024, time.January, 17),
		},
		{
			name:      "first wednesday is the reference day itself",
			reference: day(2024, time.January, 3),
			ordinal:   First,
			weekday:   4,
			want:      day(2024, time.January, 3),
		},
		{
			name:      "first sunday after a thursday reference",
			reference: day(2024, time.February, 1),
			ordinal:   First,
			weekday:   1,
			want:      day(2024, time.February, 4),
		},
		{
			name:      "last thursday is leap day",
			reference: day(2024, time.February, 1),
			ordinal:   Last,
			weekday:   5,
			want:      day(2024, time.February, 29),
		},
		{
			name:      "fifth thursday exists in february 2024",
			reference: day(2024, time.February, 1),
			ordinal:   Fifth,
			weekday:   5,
			want:      day(2024, time.February, 29),
		},
		{
			name:      "last sunday of 2023",
			reference: day(2023, time.December, 1),
			ordinal:   Last,
			weekday:   1,
			want:      day(2023, time.December, 31),
		},
		{
			name:      "last saturday of december 2023",
			reference: day(2023, time.December, 1),
			ordinal:   Last,
			weekday:   7,
			want:      day(2023, time.December, 30),
		},
		{
			name:      "second tuesday",
			reference: day(2024, time.October, 1), // Tuesday
			ordinal:   Second,
			weekday:   3,
			want:      day(2024, time.October, 8),
		},
		{
			name:      "time of day is dropped",
			reference: time.Date(2024, time.February, 1, 15, 45, 0, 0, time.UTC),
			ordinal:   Last,
			weekday:   6,
			want:      day(2024, time.February, 23),
		},
		{
			name:      "occurrences count from the reference week, not the month start",
			reference: day(2024, time.February, 15), // Thursday
			ordinal:   First,
			weekday:   6,
			want:      day(2024, time.February, 16),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(Selector{
				Reference: calendar.At(tt.reference),
				Ordinal:   tt.ordinal,
				Weekday:   tt.weekday,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name      string
		reference time.Time
		ordinal   Ordinal
		weekday   int
	}{
		{
			name:      "fifth monday of february 2024",
			reference: day(2024, time.February, 1),
			ordinal:   Fifth,
			weekday:   2,
		},
		{
			name:      "fifth friday of february 2023",
			reference: day(2023, time.February, 1),
			ordinal:   Fifth,
			weekday:   6,
		},
		{
			name:      "first friday from the last day of the month",
			reference: day(2024, time.February, 29), // Thursday
			ordinal:   First,
			weekday:   6,
		},
		{
			name:      "invalid ordinal",
			reference: day(2024, time.February, 1),
			ordinal:   Ordinal(7),
			weekday:   2,
		},
		{
			name:      "invalid weekday",
			reference: day(2024, time.February, 1),
			ordinal:   First,
			weekday:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(Selector{
				Reference: calendar.At(tt.reference),
				Ordinal:   tt.ordinal,
				Weekday:   tt.weekday,
			})
			if !errors.Is(err, calendar.ErrNotFound) {
				t.Fatalf("got %v (err %v), want ErrNotFound", got, err)
			}
		})
	}
}

// Every month has at least four and at most five occurrences of each
// weekday, so Last always resolves when counting from the 1st.
func TestResolve_LastAlwaysResolvesFromMonthStart(t *testing.T) {
	r := newTestResolver()
	for month := time.January; month <= time.December; month++ {
		for weekday := 1; weekday <= 7; weekday++ {
			ref := day(2025, month, 1)
			got, err := r.Resolve(Selector{Reference: calendar.At(ref), Ordinal: Last, Weekday: weekday})
			if err != nil {
				t.Fatalf("%s weekday %d: unexpected error: %v", month, weekday, err)
			}
			gt := got.Time()
			if gt.Month() != month {
				t.Errorf("%s weekday %d: got %v outside the month", month, weekday, gt)
			}
			if calendar.WeekdayOf(gt.Weekday()) != weekday {
				t.Errorf("%s weekday %d: got weekday %v", month, weekday, gt.Weekday())
			}
			if next := gt.AddDate(0, 0, 7); next.Month() == month {
				t.Errorf("%s weekday %d: %v is not the last occurrence", month, weekday, gt)
			}
		}
	}
}

func TestInMonth(t *testing.T) {
	r := newTestResolver()

	ref, err := r.InMonth(calendar.At(time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.Time().Equal(day(2024, time.February, 1)) {
		t.Errorf("got %v, want 2024-02-01", ref)
	}

	got, err := r.Of(ref).First().Friday()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Time().Equal(day(2024, time.February, 2)) {
		t.Errorf("got %v, want 2024-02-02", got)
	}
}

func TestQuery(t *testing.T) {
	r := newTestResolver()
	feb := calendar.At(day(2024, time.February, 1))

	tests := []struct {
		name    string
		resolve func() (calendar.Instant, error)
		want    time.Time
	}{
		{"last friday", r.Of(feb).Last().Friday, day(2024, time.February, 23)},
		{"first thursday", r.Of(feb).First().Thursday, day(2024, time.February, 1)},
		{"second saturday", r.Of(feb).Second().Saturday, day(2024, time.February, 10)},
		{"third monday", r.Of(feb).Third().Monday, day(2024, time.February, 19)},
		{"fourth tuesday", r.Of(feb).Fourth().Tuesday, day(2024, time.February, 27)},
		{"default ordinal is first", r.Of(feb).Wednesday, day(2024, time.February, 7)},
		{"last sunday", r.Of(feb).Last().Sunday, day(2024, time.February, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resolve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := r.Of(feb).Fifth().Monday(); !errors.Is(err, calendar.ErrNotFound) {
		t.Errorf("fifth monday: got %v, want ErrNotFound", err)
	}
}

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		in   string
		want Ordinal
	}{
		{"first", First},
		{"1st", First},
		{"Second", Second},
		{"3rd", Third},
		{"fourth", Fourth},
		{"5th", Fifth},
		{"LAST", Last},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrdinal(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := ParseOrdinal("sixth"); err == nil {
		t.Error("expected error for sixth")
	}
}

func TestSelectorString(t *testing.T) {
	sel := Selector{Reference: calendar.At(day(2024, time.February, 1)), Ordinal: Last, Weekday: 6}
	if got := sel.String(); got != "last friday of 2024-02" {
		t.Errorf("got %q", got)
	}
}
