// Package eerror defines the error taxonomy shared by all eones packages.
//
// Every sentinel below wraps ErrEones, so callers that don't care which
// particular thing went wrong can match coarsely:
//
//	if errors.Is(err, eerror.ErrEones) { ... }
//
// while callers that want targeted recovery (say, retrying a parse without a
// timezone) match the specific sentinel:
//
//	if errors.Is(err, eerror.ErrInvalidTimezone) { ... }
//
// Packages attach call-site context with github.com/pkg/errors, which keeps
// the sentinel reachable through the Unwrap chain.
package eerror

import (
	"errors"
	"fmt"
)

// ErrEones is the base kind. No operation returns it bare; it exists so that
// the specific sentinels have a common ancestor.
var ErrEones = errors.New("eones")

var (
	// ErrInvalidDateFormat reports that no configured layout matched an
	// input string.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", ErrEones)

	// ErrInvalidTimezone reports an unresolvable zone identifier or fixed
	// offset.
	ErrInvalidTimezone = fmt.Errorf("%w: invalid timezone", ErrEones)

	// ErrInvalidDurationFormat reports a malformed ISO-8601 duration string.
	ErrInvalidDurationFormat = fmt.Errorf("%w: invalid duration format", ErrEones)

	// ErrInvalidCalendarValue reports out-of-range calendar fields at
	// construction, e.g. day 30 in February.
	ErrInvalidCalendarValue = fmt.Errorf("%w: invalid calendar value", ErrEones)

	// ErrCalendarOverflow reports an arithmetic result outside the
	// supported year range (1-9999).
	ErrCalendarOverflow = fmt.Errorf("%w: calendar overflow", ErrEones)

	// ErrInvalidLocale reports a locale table that could not be loaded.
	ErrInvalidLocale = fmt.Errorf("%w: invalid locale", ErrEones)
)
