// Package edate provides the immutable timezone-aware point-in-time value at
// the center of eones.
//
// A Date always represents a calendar-valid civil date/time in a concrete
// timezone; there is no "naive" state.  Precision is microseconds.  Every
// transformation returns a new Date, so values can be shared freely across
// goroutines.
//
// The supported year range is 1 through 9999.  Construction outside that
// range, or with fields that don't form a real calendar date (day 30 in
// February, hour 24, ...), fails with eerror.ErrInvalidCalendarValue.
// Arithmetic that would escape the year range fails with
// eerror.ErrCalendarOverflow.
package edate

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/eclock"
	"github.com/roldriel/eones/eerror"
	"github.com/roldriel/eones/ezone"
)

// MinYear and MaxYear bound the representable range.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is an immutable instant with civil fields in a concrete timezone.
// The zero Date is 0001-01-01T00:00:00Z.
type Date struct {
	t time.Time
}

// daysBeforeMonth[m] is the number of days in a non-leap year before month m.
var daysBeforeMonth = [...]int{
	time.January:   0,
	time.February:  31,
	time.March:     31 + 28,
	time.April:     31 + 28 + 31,
	time.May:       31 + 28 + 31 + 30,
	time.June:      31 + 28 + 31 + 30 + 31,
	time.July:      31 + 28 + 31 + 30 + 31 + 30,
	time.August:    31 + 28 + 31 + 30 + 31 + 30 + 31,
	time.September: 31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	time.October:   31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	time.November:  31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	time.December:  31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month of the given year.
func DaysIn(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	if month == time.December {
		return 31
	}
	return daysBeforeMonth[month+1] - daysBeforeMonth[month]
}

// New builds a Date from explicit civil fields in loc.  A nil loc means UTC.
func New(year int, month time.Month, day, hour, min, sec, micro int, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	if err := validate(year, month, day, hour, min, sec, micro); err != nil {
		return Date{}, err
	}
	return Date{t: time.Date(year, month, day, hour, min, sec, micro*1000, loc)}, nil
}

// NewInZone is New with the timezone given by identifier, resolved through
// package ezone.
func NewInZone(year int, month time.Month, day, hour, min, sec, micro int, zone string) (Date, error) {
	loc, err := ezone.Resolve(zone)
	if err != nil {
		return Date{}, err
	}
	return New(year, month, day, hour, min, sec, micro, loc)
}

func validate(year int, month time.Month, day, hour, min, sec, micro int) error {
	switch {
	case year < MinYear || year > MaxYear:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "year %d out of range [%d, %d]", year, MinYear, MaxYear)
	case month < time.January || month > time.December:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "month %d out of range", int(month))
	case day < 1 || day > DaysIn(year, month):
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "day %d out of range for %04d-%02d", day, year, int(month))
	case hour < 0 || hour > 23:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "hour %d out of range", hour)
	case min < 0 || min > 59:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "minute %d out of range", min)
	case sec < 0 || sec > 59:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "second %d out of range", sec)
	case micro < 0 || micro > 999999:
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "microsecond %d out of range", micro)
	}
	return nil
}

// FromTime adopts a time.Time, truncating to microsecond precision and
// keeping its Location.  An instant outside the supported year range fails
// with eerror.ErrCalendarOverflow.
func FromTime(t time.Time) (Date, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Date{}, errors.Wrapf(eerror.ErrCalendarOverflow, "year %d out of range", y)
	}
	return truncated(t), nil
}

// truncated drops sub-microsecond precision without range-checking; callers
// either validated the year already or trust the source (the clock).
func truncated(t time.Time) Date {
	return Date{t: t.Truncate(0).Add(-time.Duration(t.Nanosecond() % 1000))}
}

// Now captures the current instant in loc (UTC if nil).  The clock is taken
// from ctx via package eclock, so tests can freeze it.
func Now(ctx context.Context, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return truncated(eclock.Now(ctx).In(loc))
}

// FromUnix builds a Date from whole seconds since the Unix epoch.  Timestamps
// outside the supported year range fail with eerror.ErrCalendarOverflow.
func FromUnix(sec int64, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(time.Unix(sec, 0).In(loc))
}

// FromUnixMicro builds a Date from microseconds since the Unix epoch, under
// the same range check as FromUnix.
func FromUnixMicro(usec int64, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(time.UnixMicro(usec).In(loc))
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Year() int                 { return d.t.Year() }
func (d Date) Month() time.Month         { return d.t.Month() }
func (d Date) Day() int                  { return d.t.Day() }
func (d Date) Hour() int                 { return d.t.Hour() }
func (d Date) Minute() int               { return d.t.Minute() }
func (d Date) Second() int               { return d.t.Second() }
func (d Date) Microsecond() int          { return d.t.Nanosecond() / 1000 }
func (d Date) Weekday() time.Weekday     { return d.t.Weekday() }
func (d Date) YearDay() int              { return d.t.YearDay() }
func (d Date) Location() *time.Location  { return d.t.Location() }
func (d Date) Unix() int64               { return d.t.Unix() }
func (d Date) UnixMicro() int64          { return d.t.UnixMicro() }

// Quarter returns the 1-based quarter of the year (1-4).
func (d Date) Quarter() int { return (int(d.t.Month())-1)/3 + 1 }

// Format renders d with a stdlib time layout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// String is the canonical ISO-8601 form; see ISO.
func (d Date) String() string { return d.ISO() }

// Compare orders by absolute instant: -1 if d is before other, 0 if they
// name the same instant (possibly in different zones), +1 if after.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// Equal reports whether d and other name the same absolute instant.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// In reprojects the same instant into loc.  Only the civil fields and offset
// change; Compare is invariant under In.
func (d Date) In(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Date{t: d.t.In(loc)}
}

// InZone is In with the timezone given by identifier.
func (d Date) InZone(zone string) (Date, error) {
	loc, err := ezone.Resolve(zone)
	if err != nil {
		return Date{}, err
	}
	return d.In(loc), nil
}

// AsUTC reprojects into UTC.
func (d Date) AsUTC() Date { return d.In(time.UTC) }

// WithDate replaces the year/month/day fields, keeping the clock fields and
// zone.  The resulting date is validated, not clamped.
func (d Date) WithDate(year int, month time.Month, day int) (Date, error) {
	return New(year, month, day, d.Hour(), d.Minute(), d.Second(), d.Microsecond(), d.Location())
}

// WithClock replaces the clock fields, keeping the calendar date and zone.
func (d Date) WithClock(hour, min, sec, micro int) (Date, error) {
	return New(d.Year(), d.Month(), d.Day(), hour, min, sec, micro, d.Location())
}

// AddDays shifts by whole calendar days, preserving the wall clock across
// zone transitions.
func (d Date) AddDays(n int) (Date, error) {
	return d.checkRange(d.t.AddDate(0, 0, n))
}

// AddMonths shifts the civil year/month fields by n months.  If the target
// month is shorter than the current day-of-month, the day clamps down to the
// month's last valid day (Jan 31 + 1 month is Feb 28 or 29, never an error
// and never March).
func (d Date) AddMonths(n int) (Date, error) {
	total := d.Year()*12 + int(d.Month()) - 1 + n
	year := total / 12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// Go integer division truncates toward zero; month math wants
		// floor semantics.
		year = (total - 11) / 12
		month = time.Month(total - year*12 + 1)
	}
	day := d.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Wrapf(eerror.ErrCalendarOverflow, "year %d out of range", year)
	}
	return Date{t: time.Date(year, month, day, d.Hour(), d.Minute(), d.Second(), d.Microsecond()*1000, d.Location())}, nil
}

// AddYears shifts by whole years with the same clamping rule (Feb 29 + 1
// year is Feb 28).
func (d Date) AddYears(n int) (Date, error) {
	return d.AddMonths(n * 12)
}

// AddDuration shifts the absolute instant by dur and reprojects into the
// original zone.  The civil wall clock may jump unevenly across an offset
// transition; that is the intended absolute-duration semantics.
func (d Date) AddDuration(dur time.Duration) (Date, error) {
	return d.checkRange(d.t.Add(dur))
}

func (d Date) checkRange(t time.Time) (Date, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Date{}, errors.Wrapf(eerror.ErrCalendarOverflow, "year %d out of range", y)
	}
	return Date{t: t}, nil
}

// NextWeekday returns the next date (always 1-7 days ahead) falling on w,
// keeping the clock fields.
func (d Date) NextWeekday(w time.Weekday) Date {
	ahead := (int(w) - int(d.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	next, _ := d.AddDays(ahead)
	return next
}

// PreviousWeekday returns the previous date (always 1-7 days back) falling
// on w, keeping the clock fields.
func (d Date) PreviousWeekday(w time.Weekday) Date {
	behind := (int(d.Weekday()) - int(w) + 7) % 7
	if behind == 0 {
		behind = 7
	}
	prev, _ := d.AddDays(-behind)
	return prev
}

// IsBetween reports whether d lies between start and end, inclusive of the
// endpoints when inclusive is true.
func (d Date) IsBetween(start, end Date, inclusive bool) bool {
	if inclusive {
		return !d.Before(start) && !d.After(end)
	}
	return d.After(start) && d.Before(end)
}

// IsWithin reports whether d falls in the same civil year as other, and the
// same month too when checkMonth is set.
func (d Date) IsWithin(other Date, checkMonth bool) bool {
	if d.Year() != other.Year() {
		return false
	}
	return !checkMonth || d.Month() == other.Month()
}

// IsSameWeek reports whether d and other share the same ISO week-year and
// week number.
func (d Date) IsSameWeek(other Date) bool {
	y1, w1 := d.t.ISOWeek()
	y2, w2 := other.t.ISOWeek()
	return y1 == y2 && w1 == w2
}

// DiffIn returns the elapsed whole units between d and other, truncating
// toward zero, positive when d is after other.  Duration units (seconds
// through weeks) measure exact elapsed real time; calendar units (months,
// quarters, years) count completed calendar shifts under the same clamping
// rule as AddMonths.
func (d Date) DiffIn(other Date, u Unit) (int64, error) {
	if err := u.valid(); err != nil {
		return 0, err
	}
	switch u {
	case UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek:
		micros := d.t.UnixMicro() - other.t.UnixMicro()
		per := map[Unit]int64{
			UnitSecond: 1e6,
			UnitMinute: 60 * 1e6,
			UnitHour:   3600 * 1e6,
			UnitDay:    86400 * 1e6,
			UnitWeek:   7 * 86400 * 1e6,
		}[u]
		return micros / per, nil
	case UnitMonth:
		return monthsBetween(other, d), nil
	case UnitQuarter:
		return monthsBetween(other, d) / 3, nil
	case UnitYear:
		return monthsBetween(other, d) / 12, nil
	}
	return 0, errors.Wrapf(eerror.ErrInvalidCalendarValue, "unit %s not supported by DiffIn", u)
}

// monthsBetween counts completed calendar months from a to b (positive when
// b is after a).  A month is complete when a.AddMonths(n) does not land
// after b, so Jan 31 to Feb 28 in a non-leap year is one full month.
func monthsBetween(a, b Date) int64 {
	if b.Before(a) {
		return -monthsBetween(b, a)
	}
	n := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if n > 0 {
		if moved, err := a.AddMonths(n); err == nil && moved.After(b) {
			n--
		}
	}
	return int64(n)
}
