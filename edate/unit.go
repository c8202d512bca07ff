package edate

import (
	"github.com/pkg/errors"

	"github.com/roldriel/eones/eerror"
)

// Unit names a calendar or clock granularity.  It parameterizes Truncate,
// Ceiling, Round, and DiffIn on Date, and Bounds in package erange.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

var unitNames = [...]string{
	UnitSecond:  "second",
	UnitMinute:  "minute",
	UnitHour:    "hour",
	UnitDay:     "day",
	UnitWeek:    "week",
	UnitMonth:   "month",
	UnitQuarter: "quarter",
	UnitYear:    "year",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "invalid"
	}
	return unitNames[u]
}

func (u Unit) valid() error {
	if u < 0 || int(u) >= len(unitNames) {
		return errors.Wrapf(eerror.ErrInvalidCalendarValue, "unknown unit %d", int(u))
	}
	return nil
}
