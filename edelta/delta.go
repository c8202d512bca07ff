// Package edelta provides the two interval kinds of eones and their
// composite.
//
// Calendar is a calendar-unit displacement (years, months, days): "+1 month"
// has no fixed second count, and applying it clamps to valid month ends
// (Jan 31 + 1 month is the last day of February, never March).  Duration is
// a fixed span of real time (days through microseconds) that is immune to
// calendar quirks and zone transitions.  Delta composes one of each and is
// applied calendar part first, then duration part; that order is load
// bearing for inputs like "Jan 31 + 1 month + 1 day".
package edelta

import (
	"fmt"
	"strings"
	"time"

	"github.com/roldriel/eones/edate"
)

// Calendar is a signed calendar-unit interval.  The zero value is the empty
// shift.
type Calendar struct {
	Years  int
	Months int
	Days   int
}

// Apply shifts d by the calendar interval: years and months first, clamping
// the day-of-month down to the target month's last valid day, then whole
// calendar days (which re-validate but never clamp, since day steps cannot
// overflow a month).
func (c Calendar) Apply(d edate.Date) (edate.Date, error) {
	out, err := d.AddMonths(c.Years*12 + c.Months)
	if err != nil {
		return edate.Date{}, err
	}
	return out.AddDays(c.Days)
}

// Negate inverts every field together.
func (c Calendar) Negate() Calendar {
	return Calendar{Years: -c.Years, Months: -c.Months, Days: -c.Days}
}

// Scale multiplies every field by factor.
func (c Calendar) Scale(factor int) Calendar {
	return Calendar{Years: c.Years * factor, Months: c.Months * factor, Days: c.Days * factor}
}

// IsZero reports whether the interval is the empty shift.
func (c Calendar) IsZero() bool {
	return c.Years == 0 && c.Months == 0 && c.Days == 0
}

// TotalMonths returns the year/month part normalized to months.
func (c Calendar) TotalMonths() int {
	return c.Years*12 + c.Months
}

// Duration is a signed fixed-duration interval.  A Duration day is exactly
// 24 hours of real time, regardless of calendar or zone transitions.
type Duration struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Microseconds int64
}

// Micros returns the interval as a single signed microsecond count.
func (u Duration) Micros() int64 {
	return ((u.Days*24+u.Hours)*60+u.Minutes)*60*1e6 + u.Seconds*1e6 + u.Microseconds
}

// Std returns the interval as a time.Duration.
func (u Duration) Std() time.Duration {
	return time.Duration(u.Micros()) * time.Microsecond
}

// Apply shifts d's absolute instant by the interval and reprojects into d's
// zone.  The civil wall clock may jump unevenly across an offset transition;
// that is the intended absolute-duration behavior.
func (u Duration) Apply(d edate.Date) (edate.Date, error) {
	return d.AddDuration(u.Std())
}

// Negate inverts every field together.
func (u Duration) Negate() Duration {
	return Duration{
		Days:         -u.Days,
		Hours:        -u.Hours,
		Minutes:      -u.Minutes,
		Seconds:      -u.Seconds,
		Microseconds: -u.Microseconds,
	}
}

// Scale multiplies every field by factor.
func (u Duration) Scale(factor int64) Duration {
	return Duration{
		Days:         u.Days * factor,
		Hours:        u.Hours * factor,
		Minutes:      u.Minutes * factor,
		Seconds:      u.Seconds * factor,
		Microseconds: u.Microseconds * factor,
	}
}

// IsZero reports whether the interval spans no time.
func (u Duration) IsZero() bool { return u.Micros() == 0 }

// Delta composes a Calendar and a Duration.  Construct it with a struct
// literal naming the parts you need.
type Delta struct {
	Calendar Calendar
	Duration Duration
}

// Apply shifts d by the calendar part, then by the duration part.
func (dl Delta) Apply(d edate.Date) (edate.Date, error) {
	out, err := dl.Calendar.Apply(d)
	if err != nil {
		return edate.Date{}, err
	}
	return dl.Duration.Apply(out)
}

// Negate inverts both sub-intervals field-wise.
func (dl Delta) Negate() Delta {
	return Delta{Calendar: dl.Calendar.Negate(), Duration: dl.Duration.Negate()}
}

// Add combines two deltas field-wise.
func (dl Delta) Add(other Delta) Delta {
	return Delta{
		Calendar: Calendar{
			Years:  dl.Calendar.Years + other.Calendar.Years,
			Months: dl.Calendar.Months + other.Calendar.Months,
			Days:   dl.Calendar.Days + other.Calendar.Days,
		},
		Duration: Duration{
			Days:         dl.Duration.Days + other.Duration.Days,
			Hours:        dl.Duration.Hours + other.Duration.Hours,
			Minutes:      dl.Duration.Minutes + other.Duration.Minutes,
			Seconds:      dl.Duration.Seconds + other.Duration.Seconds,
			Microseconds: dl.Duration.Microseconds + other.Duration.Microseconds,
		},
	}
}

// Sub subtracts other from dl field-wise.
func (dl Delta) Sub(other Delta) Delta {
	return dl.Add(other.Negate())
}

// Scale multiplies both sub-intervals by factor.
func (dl Delta) Scale(factor int) Delta {
	return Delta{Calendar: dl.Calendar.Scale(factor), Duration: dl.Duration.Scale(int64(factor))}
}

// IsZero reports whether both sub-intervals are empty.
func (dl Delta) IsZero() bool { return dl.Calendar.IsZero() && dl.Duration.IsZero() }

// Equal compares the calendar parts field-wise (after month normalization)
// and the duration parts by total microseconds, so PT24H equals a one-day
// Duration.
func (dl Delta) Equal(other Delta) bool {
	return dl.Calendar.TotalMonths() == other.Calendar.TotalMonths() &&
		dl.Calendar.Days == other.Calendar.Days &&
		dl.Duration.Micros() == other.Duration.Micros()
}

// String is a compact human-readable form for debugging, e.g. "1y 2mo 3d 4h
// 30m".  Use ISO for the canonical interchange form.
func (dl Delta) String() string {
	var parts []string
	add := func(v int64, suffix string) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", v, suffix))
		}
	}
	add(int64(dl.Calendar.Years), "y")
	add(int64(dl.Calendar.Months), "mo")
	add(int64(dl.Calendar.Days), "d")
	add(dl.Duration.Days*24+dl.Duration.Hours, "h")
	add(dl.Duration.Minutes, "m")
	add(dl.Duration.Seconds, "s")
	add(dl.Duration.Microseconds, "us")
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// Between returns the Delta carrying b - a: the whole-month calendar part
// first (under the same clamping rule as Calendar.Apply), then the exact
// remaining real time as the duration part.  Applying the result to a yields
// b.
func Between(a, b edate.Date) Delta {
	months, _ := b.DiffIn(a, edate.UnitMonth)
	anchored, err := a.AddMonths(int(months))
	if err != nil {
		// a and b are both in range, so the anchor is too; only a
		// programming error lands here.
		anchored = a
		months = 0
	}
	micros := b.UnixMicro() - anchored.UnixMicro()

	sign := int64(1)
	if micros < 0 {
		sign, micros = -1, -micros
	}
	days := micros / (86400 * 1e6)
	micros -= days * 86400 * 1e6
	hours := micros / (3600 * 1e6)
	micros -= hours * 3600 * 1e6
	minutes := micros / (60 * 1e6)
	micros -= minutes * 60 * 1e6
	seconds := micros / 1e6
	micros -= seconds * 1e6

	return Delta{
		Calendar: Calendar{Years: int(months) / 12, Months: int(months) % 12},
		Duration: Duration{
			Days:         sign * days,
			Hours:        sign * hours,
			Minutes:      sign * minutes,
			Seconds:      sign * seconds,
			Microseconds: sign * micros,
		},
	}
}
