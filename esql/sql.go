// Package esql adapts edate.Date to database/sql columns.
//
// NullDate mirrors sql.NullTime: it stores the canonical ISO-8601 string (or
// a native time value, where the driver has one) on the way in and accepts
// time.Time, string, or []byte on the way out.  NULL round-trips as
// Valid=false.
package esql

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/eerror"
)

// NullDate is an edate.Date that may be NULL.
type NullDate struct {
	Date  edate.Date
	Valid bool
}

// From wraps a Date into a non-NULL NullDate.
func From(d edate.Date) NullDate {
	return NullDate{Date: d, Valid: true}
}

// Value implements driver.Valuer, producing a time.Time so drivers with
// native datetime support keep full fidelity.
func (n NullDate) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Date.Time(), nil
}

// Scan implements sql.Scanner.  Text columns are expected to hold the
// canonical ISO-8601 form; zone-less text is taken as UTC.
func (n *NullDate) Scan(src interface{}) error {
	if src == nil {
		*n = NullDate{}
		return nil
	}
	switch v := src.(type) {
	case time.Time:
		d, err := edate.FromTime(v)
		if err != nil {
			return err
		}
		*n = From(d)
		return nil
	case string:
		return n.scanText(v)
	case []byte:
		return n.scanText(string(v))
	}
	return errors.Wrapf(eerror.ErrInvalidDateFormat, "cannot scan %T into NullDate", src)
}

func (n *NullDate) scanText(s string) error {
	d, err := edate.ParseISO(s, time.UTC)
	if err != nil {
		return err
	}
	*n = From(d)
	return nil
}
