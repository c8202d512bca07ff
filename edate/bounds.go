package edate

import (
	"time"
)

// Truncate zeroes every field below u, returning the first instant of the
// enclosing unit.  Weeks use Monday as the first day; package erange offers
// configurable week starts.  Truncate is idempotent per unit.
func (d Date) Truncate(u Unit) (Date, error) {
	if err := u.valid(); err != nil {
		return Date{}, err
	}
	y, m, day := d.t.Date()
	loc := d.Location()
	switch u {
	case UnitSecond:
		return Date{t: time.Date(y, m, day, d.Hour(), d.Minute(), d.Second(), 0, loc)}, nil
	case UnitMinute:
		return Date{t: time.Date(y, m, day, d.Hour(), d.Minute(), 0, 0, loc)}, nil
	case UnitHour:
		return Date{t: time.Date(y, m, day, d.Hour(), 0, 0, 0, loc)}, nil
	case UnitDay:
		return Date{t: time.Date(y, m, day, 0, 0, 0, 0, loc)}, nil
	case UnitWeek:
		return d.WeekStart(time.Monday), nil
	case UnitMonth:
		return Date{t: time.Date(y, m, 1, 0, 0, 0, 0, loc)}, nil
	case UnitQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return Date{t: time.Date(y, qm, 1, 0, 0, 0, 0, loc)}, nil
	case UnitYear:
		return Date{t: time.Date(y, time.January, 1, 0, 0, 0, 0, loc)}, nil
	}
	return Date{}, nil
}

// Ceiling advances to the last representable instant of the enclosing unit,
// one microsecond before the next unit boundary.
func (d Date) Ceiling(u Unit) (Date, error) {
	next, err := d.nextBoundary(u)
	if err != nil {
		return Date{}, err
	}
	return Date{t: next.t.Add(-time.Microsecond)}, nil
}

// Round picks whichever of Truncate and Ceiling is nearer to d; an exact
// halfway point resolves toward Ceiling.
func (d Date) Round(u Unit) (Date, error) {
	start, err := d.Truncate(u)
	if err != nil {
		return Date{}, err
	}
	next, err := d.nextBoundary(u)
	if err != nil {
		return Date{}, err
	}
	toStart := d.t.UnixMicro() - start.t.UnixMicro()
	toNext := next.t.UnixMicro() - d.t.UnixMicro()
	if toStart >= toNext {
		return Date{t: next.t.Add(-time.Microsecond)}, nil
	}
	return start, nil
}

// nextBoundary returns the first instant of the unit after the one holding d.
func (d Date) nextBoundary(u Unit) (Date, error) {
	start, err := d.Truncate(u)
	if err != nil {
		return Date{}, err
	}
	switch u {
	case UnitSecond:
		return Date{t: start.t.Add(time.Second)}, nil
	case UnitMinute:
		return Date{t: start.t.Add(time.Minute)}, nil
	case UnitHour:
		return Date{t: start.t.Add(time.Hour)}, nil
	case UnitDay:
		return Date{t: start.t.AddDate(0, 0, 1)}, nil
	case UnitWeek:
		return Date{t: start.t.AddDate(0, 0, 7)}, nil
	case UnitMonth:
		return Date{t: start.t.AddDate(0, 1, 0)}, nil
	case UnitQuarter:
		return Date{t: start.t.AddDate(0, 3, 0)}, nil
	case UnitYear:
		return Date{t: start.t.AddDate(1, 0, 0)}, nil
	}
	return Date{}, nil
}

// WeekStart returns the first instant (midnight) of the week holding d,
// where weeks begin on ws.
func (d Date) WeekStart(ws time.Weekday) Date {
	back := (int(d.Weekday()) - int(ws) + 7) % 7
	y, m, day := d.t.AddDate(0, 0, -back).Date()
	return Date{t: time.Date(y, m, day, 0, 0, 0, 0, d.Location())}
}

// WeekEnd returns the last representable instant of the week holding d,
// where weeks begin on ws.
func (d Date) WeekEnd(ws time.Weekday) Date {
	return Date{t: d.WeekStart(ws).t.AddDate(0, 0, 7).Add(-time.Microsecond)}
}
