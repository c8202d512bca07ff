package edate

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/eerror"
	"github.com/roldriel/eones/ezone"
)

// isoZoned are ISO-8601 layouts that carry their own offset; an offset
// embedded in the input always beats any supplied default zone.  The .999999999
// fraction matches zero or more fractional digits, including none.
var isoZoned = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-0700",
}

// isoNaive are ISO-8601 layouts without an offset; they are interpreted in
// the caller's default zone.
var isoNaive = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 instant string.  Fractional seconds are
// optional; offsets may be "Z", "+HH:MM", "-HHMM", or "+HH".  Strings
// without an offset are interpreted in loc (UTC if nil).  Precision beyond
// microseconds is discarded.
func ParseISO(s string, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range isoZoned {
		if t, err := time.Parse(layout, s); err == nil {
			return fromParsed(t)
		}
	}
	for _, layout := range isoNaive {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return fromParsed(t)
		}
	}
	return Date{}, errors.Wrapf(eerror.ErrInvalidDateFormat, "not an ISO-8601 instant: %q", s)
}

func fromParsed(t time.Time) (Date, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Date{}, errors.Wrapf(eerror.ErrInvalidCalendarValue, "year %d out of range", y)
	}
	return truncated(t), nil
}

// ISO renders the canonical external representation: RFC 3339 with the zone
// offset, plus a fixed six-digit fraction whenever the microsecond field is
// nonzero.
func (d Date) ISO() string {
	if d.Microsecond() != 0 {
		return d.t.Format("2006-01-02T15:04:05.000000Z07:00")
	}
	return d.t.Format("2006-01-02T15:04:05Z07:00")
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISO()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  Strings without an
// offset are taken as UTC.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseISO(string(text), time.UTC)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the ISO form as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISO())
}

// UnmarshalJSON decodes a JSON string in ISO form.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(eerror.ErrInvalidDateFormat, err.Error())
	}
	return d.UnmarshalText([]byte(s))
}

// Fields is the canonical structured representation of a Date for
// interchange with document formats.  Zero Month and Day mean the minimum
// (January, the 1st); a zero clock is midnight; an empty Zone means UTC.
type Fields struct {
	Year        int    `json:"year" yaml:"year"`
	Month       int    `json:"month,omitempty" yaml:"month,omitempty"`
	Day         int    `json:"day,omitempty" yaml:"day,omitempty"`
	Hour        int    `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute      int    `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second      int    `json:"second,omitempty" yaml:"second,omitempty"`
	Microsecond int    `json:"microsecond,omitempty" yaml:"microsecond,omitempty"`
	Zone        string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Date materializes the fields, applying the minimum defaults for month and
// day and resolving Zone through package ezone.
func (f Fields) Date() (Date, error) {
	month := f.Month
	if month == 0 {
		month = 1
	}
	day := f.Day
	if day == 0 {
		day = 1
	}
	loc, err := ezone.Resolve(f.Zone)
	if err != nil {
		return Date{}, err
	}
	return New(f.Year, time.Month(month), day, f.Hour, f.Minute, f.Second, f.Microsecond, loc)
}

// Fields returns the structured representation of d.  The Zone is the
// location's name, which may be a fixed-offset label.
func (d Date) Fields() Fields {
	return Fields{
		Year:        d.Year(),
		Month:       int(d.Month()),
		Day:         d.Day(),
		Hour:        d.Hour(),
		Minute:      d.Minute(),
		Second:      d.Second(),
		Microsecond: d.Microsecond(),
		Zone:        d.Location().String(),
	}
}
