// Package ezone resolves timezone identifiers to *time.Location values.
//
// Three shapes of identifier are accepted:
//
//   - IANA names ("America/New_York", "Europe/Madrid"), resolved through the
//     zone database the Go runtime can see;
//   - the special names "UTC", "Local", and the empty string (which means
//     UTC);
//   - fixed offsets, with or without a UTC/GMT prefix and with or without a
//     colon: "+03:00", "-0700", "+03", "UTC+3", "GMT-05:30".
//
// Resolutions are cached for the life of the process; the cache is read-only
// after first use of a given name and safe for concurrent use.
package ezone

import (
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/eerror"
)

var offsetRe = regexp.MustCompile(`^(?:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)

var cache = struct { //nolint:gochecknoglobals // shared resolution cache
	sync.RWMutex
	byName map[string]*time.Location
}{
	byName: map[string]*time.Location{},
}

// Resolve maps a timezone identifier to a Location.  An empty identifier
// resolves to UTC.  Unrecognized identifiers fail with
// eerror.ErrInvalidTimezone.
func Resolve(name string) (*time.Location, error) {
	switch name {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}

	cache.RLock()
	loc, ok := cache.byName[name]
	cache.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := resolve(name)
	if err != nil {
		return nil, err
	}

	cache.Lock()
	cache.byName[name] = loc
	cache.Unlock()
	return loc, nil
}

func resolve(name string) (*time.Location, error) {
	if m := offsetRe.FindStringSubmatch(name); m != nil {
		return fixedOffset(name, m)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(eerror.ErrInvalidTimezone, "unknown zone %q", name)
	}
	return loc, nil
}

func fixedOffset(name string, m []string) (*time.Location, error) {
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 23 || minutes > 59 {
		return nil, errors.Wrapf(eerror.ErrInvalidTimezone, "offset %q out of range", name)
	}
	secs := hours*3600 + minutes*60
	if m[1] == "-" {
		secs = -secs
	}
	return time.FixedZone(name, secs), nil
}
