package edelta

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/eerror"
)

// durationRe accepts the ISO-8601 duration grammar used by eones: an
// optional sign, the calendar designators Y/M/W/D in that order, then an
// optional time part with H/M/S where seconds may carry a fraction.
var durationRe = regexp.MustCompile(
	`^([+-])?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?` +
		`(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.(\d{1,9}))?S)?)?$`)

// ParseISO parses an ISO-8601 duration string into a Delta.  Y, M, W, and D
// land in the calendar part (a week is seven calendar days); H, M, and S
// land in the duration part, with fractional seconds kept to microsecond
// precision.  Malformed input (wrong designator order, empty "P", trailing
// garbage) fails with eerror.ErrInvalidDurationFormat.
func ParseISO(s string) (Delta, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return Delta{}, errors.Wrapf(eerror.ErrInvalidDurationFormat, "not an ISO-8601 duration: %q", s)
	}
	hasComponent := false
	for _, g := range m[2:] {
		if g != "" {
			hasComponent = true
			break
		}
	}
	if !hasComponent {
		return Delta{}, errors.Wrapf(eerror.ErrInvalidDurationFormat, "duration %q has no components", s)
	}
	// A time designator with nothing after it ("P1DT") is malformed.
	if strings.HasSuffix(s, "T") {
		return Delta{}, errors.Wrapf(eerror.ErrInvalidDurationFormat, "dangling time designator in %q", s)
	}

	num := func(g string) int64 {
		if g == "" {
			return 0
		}
		n, _ := strconv.ParseInt(g, 10, 64)
		return n
	}

	dl := Delta{
		Calendar: Calendar{
			Years:  int(num(m[2])),
			Months: int(num(m[3])),
			Days:   int(num(m[4]))*7 + int(num(m[5])),
		},
		Duration: Duration{
			Hours:        num(m[6]),
			Minutes:      num(m[7]),
			Seconds:      num(m[8]),
			Microseconds: fractionMicros(m[9]),
		},
	}
	if m[1] == "-" {
		dl = dl.Negate()
	}
	return dl, nil
}

// fractionMicros converts a fractional-second digit string to microseconds,
// discarding precision beyond six digits.
func fractionMicros(digits string) int64 {
	if digits == "" {
		return 0
	}
	if len(digits) > 6 {
		digits = digits[:6]
	}
	for len(digits) < 6 {
		digits += "0"
	}
	n, _ := strconv.ParseInt(digits, 10, 64)
	return n
}

// ISO renders the canonical duration string: a calendar portion with Y/M/D
// letters only for nonzero calendar fields, a time portion with H/M/S only
// for nonzero duration fields, and "PT0S" for the all-zero delta.  Duration
// days fold into hours so the calendar D designator stays unambiguous.
// A delta whose nonzero components disagree in sign has no ISO form and
// fails with eerror.ErrInvalidDurationFormat.
func (dl Delta) ISO() (string, error) {
	sign, err := dl.isoSign()
	if err != nil {
		return "", err
	}
	if dl.IsZero() {
		return "PT0S", nil
	}

	months := dl.Calendar.TotalMonths() * sign
	days := dl.Calendar.Days * sign
	micros := dl.Duration.Micros() * int64(sign)

	var b strings.Builder
	if sign < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	if y := months / 12; y != 0 {
		fmt.Fprintf(&b, "%dY", y)
	}
	if mo := months % 12; mo != 0 {
		fmt.Fprintf(&b, "%dM", mo)
	}
	if days != 0 {
		fmt.Fprintf(&b, "%dD", days)
	}

	if micros != 0 {
		b.WriteByte('T')
		hours := micros / (3600 * 1e6)
		micros -= hours * 3600 * 1e6
		minutes := micros / (60 * 1e6)
		micros -= minutes * 60 * 1e6
		seconds := micros / 1e6
		micros -= seconds * 1e6
		if hours != 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes != 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		switch {
		case micros != 0:
			frac := strings.TrimRight(fmt.Sprintf("%06d", micros), "0")
			fmt.Fprintf(&b, "%d.%sS", seconds, frac)
		case seconds != 0:
			fmt.Fprintf(&b, "%dS", seconds)
		}
	}
	return b.String(), nil
}

// isoSign returns the uniform sign of the delta's nonzero components: +1,
// or -1, with +1 for the all-zero delta.
func (dl Delta) isoSign() (int, error) {
	sign := 0
	observe := func(v int64) error {
		switch {
		case v == 0:
			return nil
		case v > 0 && sign >= 0:
			sign = 1
		case v < 0 && sign <= 0:
			sign = -1
		default:
			return errors.Wrap(eerror.ErrInvalidDurationFormat, "mixed-sign delta has no ISO form")
		}
		return nil
	}
	if err := observe(int64(dl.Calendar.TotalMonths())); err != nil {
		return 0, err
	}
	if err := observe(int64(dl.Calendar.Days)); err != nil {
		return 0, err
	}
	if err := observe(dl.Duration.Micros()); err != nil {
		return 0, err
	}
	if sign == 0 {
		sign = 1
	}
	return sign, nil
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (dl Delta) MarshalText() ([]byte, error) {
	s, err := dl.ISO()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dl *Delta) UnmarshalText(text []byte) error {
	parsed, err := ParseISO(string(text))
	if err != nil {
		return err
	}
	*dl = parsed
	return nil
}
