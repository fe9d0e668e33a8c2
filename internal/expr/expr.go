// Package expr evaluates short English date expressions such as
// "last friday of feb 2024", "3 days from now" or "today + 2 hours".
//
// Grammar (case-insensitive):
//
//	expr     = primary { ("+" | "-") delta }
//	primary  = "in" delta
//	         | delta ("from now" | "ago" | "after" base | "before" base)
//	         | ordinal weekday [ "of" base ]
//	         | base
//	base     = "now" | "today" | "tomorrow" | "yesterday"
//	         | ("this" | "next" | "last") ("month" | "year")
//	         | "next" weekday | weekday
//	         | month [ year ] | YYYY-MM-DD [ HH:MM[:SS] ] | YYYY-MM-DDTHH:MM[:SS]
//	delta    = number unit | "a" unit | "an" unit
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/dates"
	"github.com/javiermolinar/fecha/internal/delta"
	"github.com/javiermolinar/fecha/internal/relative"
)

// ErrSyntax is returned for input that does not match the grammar.
var ErrSyntax = errors.New("invalid date expression")

// Evaluator evaluates expressions against a calendar.
type Evaluator struct {
	ed  *dates.Editor
	ap  *delta.Applier
	res *relative.Resolver
}

// NewEvaluator returns an Evaluator for cal.
func NewEvaluator(cal calendar.Provider) *Evaluator {
	ed := dates.NewEditor(cal)
	return &Evaluator{
		ed:  ed,
		ap:  delta.NewApplier(ed),
		res: relative.NewResolver(ed),
	}
}

// Editor returns the component editor used by the evaluator.
func (e *Evaluator) Editor() *dates.Editor { return e.ed }

// Applier returns the delta applier used by the evaluator.
func (e *Evaluator) Applier() *delta.Applier { return e.ap }

// Resolver returns the relative resolver used by the evaluator.
func (e *Evaluator) Resolver() *relative.Resolver { return e.res }

// Eval evaluates input. Syntax errors wrap ErrSyntax; expressions that
// name a date that does not exist wrap calendar.ErrNotFound or
// calendar.ErrUnresolvable.
func (e *Evaluator) Eval(input string) (calendar.Instant, error) {
	p := &parser{ev: e, toks: tokenize(input)}
	if len(p.toks) == 0 {
		return calendar.Instant{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	out, err := p.expr()
	if err != nil {
		return calendar.Instant{}, err
	}
	if !p.done() {
		return calendar.Instant{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.peek())
	}
	return out, nil
}

// tokenize lower cases input and splits it on whitespace. Operators must
// stand alone: "today + 3 days", not "today+3days".
func tokenize(input string) []string {
	return strings.Fields(strings.ToLower(input))
}

type parser struct {
	ev   *Evaluator
	toks []string
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) string {
	if p.pos+n >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) accept(tok string) bool {
	if p.peek() == tok {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expr() (calendar.Instant, error) {
	out, err := p.primary()
	if err != nil {
		return calendar.Instant{}, err
	}
	for !p.done() {
		op := p.peek()
		if op != "+" && op != "-" {
			break
		}
		p.pos++
		d, err := p.delta()
		if err != nil {
			return calendar.Instant{}, err
		}
		if op == "+" {
			out, err = p.ev.ap.Add(out, d)
		} else {
			out, err = p.ev.ap.Subtract(out, d)
		}
		if err != nil {
			return calendar.Instant{}, err
		}
	}
	return out, nil
}

func (p *parser) primary() (calendar.Instant, error) {
	if p.accept("in") {
		d, err := p.delta()
		if err != nil {
			return calendar.Instant{}, err
		}
		return p.ev.ap.FromNow(d)
	}

	if o, err := relative.ParseOrdinal(p.peek()); err == nil {
		if wd, err := dates.ParseWeekday(p.peekAt(1)); err == nil {
			p.pos += 2
			return p.ordinal(o, wd)
		}
	}

	if p.startsDelta() {
		d, err := p.delta()
		if err != nil {
			return calendar.Instant{}, err
		}
		switch {
		case p.accept("ago"):
			return p.ev.ap.Ago(d)
		case p.accept("from"):
			if !p.accept("now") {
				return calendar.Instant{}, fmt.Errorf("%w: expected \"now\" after \"from\"", ErrSyntax)
			}
			return p.ev.ap.FromNow(d)
		case p.accept("after"):
			base, err := p.base()
			if err != nil {
				return calendar.Instant{}, err
			}
			return p.ev.ap.After(d, base)
		case p.accept("before"):
			base, err := p.base()
			if err != nil {
				return calendar.Instant{}, err
			}
			return p.ev.ap.Before(d, base)
		default:
			return calendar.Instant{}, fmt.Errorf("%w: %s must be followed by ago, from now, after or before", ErrSyntax, d)
		}
	}

	return p.base()
}

// ordinal resolves "<ordinal> <weekday> [of <base>]", counting from the
// first day of the base month.
func (p *parser) ordinal(o relative.Ordinal, weekday int) (calendar.Instant, error) {
	var base calendar.Instant
	var err error
	if p.accept("of") {
		base, err = p.base()
	} else {
		base, err = p.ev.ed.Today()
	}
	if err != nil {
		return calendar.Instant{}, err
	}
	ref, err := p.ev.res.InMonth(base)
	if err != nil {
		return calendar.Instant{}, err
	}
	return p.ev.res.Resolve(relative.Selector{Reference: ref, Ordinal: o, Weekday: weekday})
}

func (p *parser) startsDelta() bool {
	tok := p.peek()
	if tok == "a" || tok == "an" {
		return true
	}
	if tok == "" {
		return false
	}
	c := tok[0]
	if (c < '0' || c > '9') && c != '.' {
		return false
	}
	// A date literal also starts with a digit.
	return !strings.Contains(tok[1:], "-") && !strings.Contains(tok, ":")
}

func (p *parser) delta() (delta.Delta, error) {
	tok := p.next()
	if tok == "" {
		return delta.Delta{}, fmt.Errorf("%w: expected a delta", ErrSyntax)
	}
	if tok == "a" || tok == "an" {
		unit, err := delta.ParseUnit(p.next())
		if err != nil {
			return delta.Delta{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return delta.New(1, unit)
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		tok += " " + p.next()
	}
	d, err := delta.Parse(tok)
	if err != nil {
		return delta.Delta{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return d, nil
}

func (p *parser) base() (calendar.Instant, error) {
	ed := p.ev.ed
	tok := p.next()
	switch tok {
	case "":
		return calendar.Instant{}, fmt.Errorf("%w: expected a date", ErrSyntax)
	case "now":
		return ed.Now(), nil
	case "today":
		return ed.Today()
	case "tomorrow", "yesterday":
		today, err := ed.Today()
		if err != nil {
			return calendar.Instant{}, err
		}
		if tok == "tomorrow" {
			return p.ev.ap.Add(today, delta.Days(1))
		}
		return p.ev.ap.Subtract(today, delta.Days(1))
	case "this", "next", "last", "previous":
		return p.period(tok)
	}

	if m, err := dates.ParseMonth(tok); err == nil {
		if year, err := strconv.Atoi(p.peek()); err == nil && len(p.peek()) == 4 {
			p.pos++
			return ed.Date(year, m, 1)
		}
		return ed.MonthStart(m)
	}
	if wd, err := dates.ParseWeekday(tok); err == nil {
		return ed.ThisWeek(wd)
	}
	return p.literal(tok)
}

// period handles "this|next|last month|year" and "next <weekday>".
func (p *parser) period(which string) (calendar.Instant, error) {
	ed := p.ev.ed
	unit := p.next()

	if which == "next" {
		if wd, err := dates.ParseWeekday(unit); err == nil {
			return p.nextWeekday(wd)
		}
	}

	step := 0
	switch which {
	case "next":
		step = 1
	case "last", "previous":
		step = -1
	}

	today, err := ed.Today()
	if err != nil {
		return calendar.Instant{}, err
	}
	switch unit {
	case "month":
		start, err := p.ev.res.InMonth(today)
		if err != nil {
			return calendar.Instant{}, err
		}
		return p.ev.ap.Add(start, delta.Months(step))
	case "year":
		return ed.Date(ed.Year(today)+step, 1, 1)
	default:
		return calendar.Instant{}, fmt.Errorf("%w: expected month or year after %q, got %q", ErrSyntax, which, unit)
	}
}

// nextWeekday returns the next occurrence of weekday strictly after today.
func (p *parser) nextWeekday(weekday int) (calendar.Instant, error) {
	ed := p.ev.ed
	today, err := ed.Today()
	if err != nil {
		return calendar.Instant{}, err
	}
	daysUntil := weekday - ed.Weekday(today)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.ev.ap.Add(today, delta.Days(daysUntil))
}

var clockLayouts = []string{"15:04:05", "15:04"}

// literal parses YYYY-MM-DD, optionally followed by a clock token, or an
// ISO 8601 date and time joined by "t".
func (p *parser) literal(tok string) (calendar.Instant, error) {
	datePart, clockPart, joined := strings.Cut(tok, "t")
	d, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return calendar.Instant{}, fmt.Errorf("%w: unrecognized %q", ErrSyntax, tok)
	}
	if !joined && strings.Contains(p.peek(), ":") {
		clockPart = p.next()
	}
	if clockPart == "" {
		return p.ev.ed.Date(d.Year(), int(d.Month()), d.Day())
	}
	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clockPart)
		if err != nil {
			continue
		}
		return p.ev.ed.DateTime(d.Year(), int(d.Month()), d.Day(), c.Hour(), c.Minute(), float64(c.Second()))
	}
	return calendar.Instant{}, fmt.Errorf("%w: unrecognized time %q", ErrSyntax, clockPart)
}
