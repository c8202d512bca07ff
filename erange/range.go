// Package erange computes period boundaries and lazy step iteration over
// intervals of edate.Date values.
//
// The first day of the week is explicit Calculator state rather than a
// process-wide setting, so two goroutines with different week conventions
// never race; it only affects week boundaries, never day, month, quarter, or
// year ones.
package erange

import (
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/edelta"
	"github.com/roldriel/eones/eerror"
)

// Calculator computes period bounds.  The zero value uses Sunday as the
// first day of the week (time.Weekday's zero); use WeekStart to pick
// another convention.
type Calculator struct {
	// WeekStart is the first day of the week for week bounds and the
	// weekend predicate.
	WeekStart time.Weekday
}

// Bounds returns the inclusive [start, end] boundary pair of the unit-sized
// period holding d: start is the first instant of the period, end the last
// representable instant (one microsecond before the next period).
func (c Calculator) Bounds(d edate.Date, u edate.Unit) (start, end edate.Date, err error) {
	if u == edate.UnitWeek {
		return d.WeekStart(c.WeekStart), d.WeekEnd(c.WeekStart), nil
	}
	if start, err = d.Truncate(u); err != nil {
		return edate.Date{}, edate.Date{}, err
	}
	if end, err = d.Ceiling(u); err != nil {
		return edate.Date{}, edate.Date{}, err
	}
	return start, end, nil
}

// IsWeekend reports whether d falls on the two days closing the week, i.e.
// the 6th and 7th days counted from WeekStart.  With a Monday week start
// that is Saturday and Sunday.
func (c Calculator) IsWeekend(d edate.Date) bool {
	idx := (int(d.Weekday()) - int(c.WeekStart) + 7) % 7
	return idx >= 5
}

// Iterator lazily walks from a start date toward an end bound, advancing by
// a fixed Delta each step.  It is finite and forward-only: once the cursor
// crosses the bound it never yields again.
type Iterator struct {
	cursor    edate.Date
	end       edate.Date
	step      edelta.Delta
	inclusive bool
	done      bool
}

// Steps returns an Iterator over [start, end], or [start, end) when
// inclusive is false.  The step must move the cursor strictly forward;
// a zero or backward step fails with eerror.ErrInvalidCalendarValue so the
// iteration cannot run unbounded.
func Steps(start, end edate.Date, step edelta.Delta, inclusive bool) (*Iterator, error) {
	probe, err := step.Apply(start)
	if err == nil && !probe.After(start) {
		return nil, errors.Wrap(eerror.ErrInvalidCalendarValue, "step does not advance")
	}
	return &Iterator{cursor: start, end: end, step: step, inclusive: inclusive}, nil
}

// Next returns the next Date in the sequence.  The second result is false
// once the iterator is exhausted.
func (it *Iterator) Next() (edate.Date, bool) {
	if it.done {
		return edate.Date{}, false
	}
	if it.inclusive {
		if it.cursor.After(it.end) {
			it.done = true
			return edate.Date{}, false
		}
	} else if !it.cursor.Before(it.end) {
		it.done = true
		return edate.Date{}, false
	}

	out := it.cursor
	next, err := it.step.Apply(it.cursor)
	if err != nil {
		// The next step would overflow the year range; the sequence
		// ends with the current value.
		it.done = true
		return out, true
	}
	it.cursor = next
	return out, true
}

// Collect drains the iterator into a slice.  Intended for small ranges and
// tests; prefer Next for large walks.
func (it *Iterator) Collect() []edate.Date {
	var out []edate.Date
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		out = append(out, d)
	}
	return out
}
