package relative

import "github.com/javiermolinar/fecha/internal/calendar"

// Query builds a Selector step by step:
//
//	r.Of(ref).Last().Friday()
type Query struct {
	r       *Resolver
	ref     calendar.Instant
	ordinal Ordinal
}

// Of starts a query relative to ref. The ordinal defaults to First.
func (r *Resolver) Of(ref calendar.Instant) Query {
	return Query{r: r, ref: ref, ordinal: First}
}

// Nth sets the ordinal.
func (q Query) Nth(o Ordinal) Query {
	q.ordinal = o
	return q
}

func (q Query) First() Query  { return q.Nth(First) }
func (q Query) Second() Query { return q.Nth(Second) }
func (q Query) Third() Query  { return q.Nth(Third) }
func (q Query) Fourth() Query { return q.Nth(Fourth) }
func (q Query) Fifth() Query  { return q.Nth(Fifth) }
func (q Query) Last() Query   { return q.Nth(Last) }

// Selector returns the selector for weekday.
func (q Query) Selector(weekday int) Selector {
	return Selector{Reference: q.ref, Ordinal: q.ordinal, Weekday: weekday}
}

// Weekday resolves the query for weekday, 1 (Sunday) through 7 (Saturday).
func (q Query) Weekday(weekday int) (calendar.Instant, error) {
	return q.r.Resolve(q.Selector(weekday))
}

func (q Query) Sunday() (calendar.Instant, error)    { return q.Weekday(1) }
func (q Query) Monday() (calendar.Instant, error)    { return q.Weekday(2) }
func (q Query) Tuesday() (calendar.Instant, error)   { return q.Weekday(3) }
func (q Query) Wednesday() (calendar.Instant, error) { return q.Weekday(4) }
func (q Query) Thursday() (calendar.Instant, error)  { return q.Weekday(5) }
func (q Query) Friday() (calendar.Instant, error)    { return q.Weekday(6) }
func (q Query) Saturday() (calendar.Instant, error)  { return q.Weekday(7) }
