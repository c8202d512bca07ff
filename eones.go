// Package eones is a temporal-reasoning library: timezone-aware dates,
// calendar-vs-duration deltas, multi-format parsing, and period ranges.
//
// The pieces live in focused subpackages — edate (the Date value), edelta
// (intervals), eparse (ingestion), erange (bounds and iteration), ezone
// (timezone resolution), ehumanize (phrases), esql (database glue) — and
// this package ties them together with the Eones convenience wrapper and a
// handful of one-call helpers.  The subpackage types are all immutable
// values; Eones itself is a mutable wrapper for callers who want the
// parse-then-poke style, and is not safe for concurrent mutation.
package eones

import (
	"context"
	"time"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/edelta"
	"github.com/roldriel/eones/eerror"
	"github.com/roldriel/eones/eparse"
	"github.com/roldriel/eones/erange"
)

// Error sentinels, re-exported so facade users don't need to import eerror.
var (
	ErrEones                 = eerror.ErrEones
	ErrInvalidDateFormat     = eerror.ErrInvalidDateFormat
	ErrInvalidTimezone       = eerror.ErrInvalidTimezone
	ErrInvalidDurationFormat = eerror.ErrInvalidDurationFormat
	ErrInvalidCalendarValue  = eerror.ErrInvalidCalendarValue
	ErrCalendarOverflow      = eerror.ErrCalendarOverflow
	ErrInvalidLocale         = eerror.ErrInvalidLocale
)

// Config configures an Eones wrapper: the default timezone identifier and
// the ordered layout list for string parsing.  The zero value means UTC and
// the default layouts.
type Config struct {
	Zone    string
	Layouts []string
}

// Eones wraps a Date together with the Parser that produced it.  Mutating
// methods (Add, Replace*) move the wrapped date in place; everything they
// build on is immutable, so sharing the underlying values is safe.
type Eones struct {
	parser *eparse.Parser
	date   edate.Date
}

func newWrapper(cfg Config) (*Eones, *eparse.Parser, error) {
	p, err := eparse.New(eparse.Config{Zone: cfg.Zone, Layouts: cfg.Layouts})
	if err != nil {
		return nil, nil, err
	}
	return &Eones{parser: p}, p, nil
}

// FromString parses s against the configured layouts.
func FromString(s string, cfg Config) (*Eones, error) {
	e, p, err := newWrapper(cfg)
	if err != nil {
		return nil, err
	}
	if e.date, err = p.ParseString(s); err != nil {
		return nil, err
	}
	return e, nil
}

// FromFields materializes a field mapping.
func FromFields(f edate.Fields, cfg Config) (*Eones, error) {
	e, p, err := newWrapper(cfg)
	if err != nil {
		return nil, err
	}
	if e.date, err = p.ParseFields(f); err != nil {
		return nil, err
	}
	return e, nil
}

// FromTime adopts a foreign time.Time.
func FromTime(t time.Time, cfg Config) (*Eones, error) {
	e, p, err := newWrapper(cfg)
	if err != nil {
		return nil, err
	}
	if e.date, err = p.FromTime(t); err != nil {
		return nil, err
	}
	return e, nil
}

// Now captures the current instant in the configured zone.  The clock comes
// from ctx via package eclock, so tests can freeze it.
func Now(ctx context.Context, cfg Config) (*Eones, error) {
	e, p, err := newWrapper(cfg)
	if err != nil {
		return nil, err
	}
	e.date = edate.Now(ctx, p.Zone())
	return e, nil
}

// Date returns the wrapped value.
func (e *Eones) Date() edate.Date { return e.date }

// Parse runs an arbitrary string through the wrapper's parser without
// touching the wrapped date.
func (e *Eones) Parse(s string) (edate.Date, error) {
	return e.parser.ParseString(s)
}

// Add shifts the wrapped date by dl, calendar part first.
func (e *Eones) Add(dl edelta.Delta) error {
	moved, err := dl.Apply(e.date)
	if err != nil {
		return err
	}
	e.date = moved
	return nil
}

// Format renders the wrapped date with a stdlib layout.
func (e *Eones) Format(layout string) string { return e.date.Format(layout) }

// ISO renders the canonical ISO-8601 form.
func (e *Eones) ISO() string { return e.date.ISO() }

// Difference returns the elapsed whole units from other to the wrapped
// date, truncating toward zero.
func (e *Eones) Difference(other *Eones, u edate.Unit) (int64, error) {
	return e.date.DiffIn(other.date, u)
}

// DifferenceDelta returns the full Delta from other to the wrapped date.
func (e *Eones) DifferenceDelta(other *Eones) edelta.Delta {
	return edelta.Between(other.date, e.date)
}

// ReplaceDate swaps the calendar fields of the wrapped date.
func (e *Eones) ReplaceDate(year int, month time.Month, day int) error {
	replaced, err := e.date.WithDate(year, month, day)
	if err != nil {
		return err
	}
	e.date = replaced
	return nil
}

// ReplaceClock swaps the clock fields of the wrapped date.
func (e *Eones) ReplaceClock(hour, min, sec, micro int) error {
	replaced, err := e.date.WithClock(hour, min, sec, micro)
	if err != nil {
		return err
	}
	e.date = replaced
	return nil
}

// IsBetween parses start and end with the wrapper's parser and reports
// whether the wrapped date lies between them.
func (e *Eones) IsBetween(start, end string, inclusive bool) (bool, error) {
	s, err := e.parser.ParseString(start)
	if err != nil {
		return false, err
	}
	n, err := e.parser.ParseString(end)
	if err != nil {
		return false, err
	}
	return e.date.IsBetween(s, n, inclusive), nil
}

// IsWithin reports whether the wrapped date shares the civil year (and
// month, when checkMonth is set) with the parsed other.
func (e *Eones) IsWithin(other string, checkMonth bool) (bool, error) {
	o, err := e.parser.ParseString(other)
	if err != nil {
		return false, err
	}
	return e.date.IsWithin(o, checkMonth), nil
}

// IsSameWeek reports whether the wrapped date and the parsed other share
// the same ISO week.
func (e *Eones) IsSameWeek(other string) (bool, error) {
	o, err := e.parser.ParseString(other)
	if err != nil {
		return false, err
	}
	return e.date.IsSameWeek(o), nil
}

// NextWeekday returns the next date falling on w.
func (e *Eones) NextWeekday(w time.Weekday) edate.Date {
	return e.date.NextWeekday(w)
}

// Range returns the period bounds of the given unit around the wrapped
// date, with Monday as the first day of the week.
func (e *Eones) Range(u edate.Unit) (start, end edate.Date, err error) {
	return erange.Calculator{WeekStart: time.Monday}.Bounds(e.date, u)
}

// ParseDate is a one-call parse: value against the default (or supplied)
// layouts in the given zone.
func ParseDate(value, zone string, layouts ...string) (edate.Date, error) {
	p, err := eparse.New(eparse.Config{Zone: zone, Layouts: layouts})
	if err != nil {
		return edate.Date{}, err
	}
	return p.ParseString(value)
}

// FormatDate renders d with a stdlib layout.
func FormatDate(d edate.Date, layout string) string { return d.Format(layout) }

// AddDays shifts d by whole calendar days.
func AddDays(d edate.Date, days int) (edate.Date, error) { return d.AddDays(days) }

// DateDiffDays returns the exact elapsed whole days from a to b.
func DateDiffDays(a, b edate.Date) int64 {
	days, _ := b.DiffIn(a, edate.UnitDay)
	return days
}

// DateRange lists the dates from start to end inclusive, stepping by
// stepDays calendar days.
func DateRange(start, end edate.Date, stepDays int) ([]edate.Date, error) {
	step := edelta.Delta{Calendar: edelta.Calendar{Days: stepDays}}
	it, err := erange.Steps(start, end, step, true)
	if err != nil {
		return nil, err
	}
	return it.Collect(), nil
}

// ToTimestamp returns d as whole seconds since the Unix epoch.
func ToTimestamp(d edate.Date) int64 { return d.Unix() }

// FromTimestamp builds a Date from a Unix timestamp in the given zone.
func FromTimestamp(sec int64, zone string) (edate.Date, error) {
	d, err := edate.FromUnix(sec, nil)
	if err != nil {
		return edate.Date{}, err
	}
	if zone == "" {
		return d, nil
	}
	return d.InZone(zone)
}
