// Package eparse turns heterogeneous input into edate.Date values.
//
// A Parser owns an ordered list of stdlib time layouts and a default zone.
// Each input shape has its own entry point (ParseString, ParseISO,
// ParseFields, FromTime) rather than one any-typed function, so dispatch is
// explicit and the "nothing matched" path is a single defined outcome.
//
// Timezone precedence is deterministic everywhere: an offset embedded in the
// input wins, otherwise the Parser's configured zone applies, otherwise UTC.
// Parsing is pure: the same input against the same layout list yields the
// same Date every time.
package eparse

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/eerror"
	"github.com/roldriel/eones/elog"
	"github.com/roldriel/eones/ezone"
)

// defaultLayouts is the built-in candidate list, ordered most-specific
// first within each shape so first-match-wins stays deterministic.
var defaultLayouts = []string{
	"2006-01-02T15:04:05.999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"02 Jan 2006",
	"02 January 2006",
	"20060102",
	"02012006",
	"Mon Jan 02 15:04:05 2006",
}

// DefaultLayouts returns a copy of the built-in layout list.
func DefaultLayouts() []string {
	out := make([]string, len(defaultLayouts))
	copy(out, defaultLayouts)
	return out
}

// Config configures a Parser.  The zero value means UTC with the default
// layout list and the process fallback logger.
type Config struct {
	// Zone is the default timezone identifier applied to inputs that
	// carry no offset of their own.  Empty means UTC.
	Zone string

	// Layouts is the ordered candidate list for ParseString.  Nil means
	// DefaultLayouts(); duplicates are dropped, keeping first position.
	Layouts []string

	// Logger receives per-attempt trace detail.  Nil means
	// elog.Fallback() at call time.
	Logger elog.Logger
}

// Parser converts strings, field mappings, and foreign time.Time values into
// Dates.  A Parser is immutable after New and safe for concurrent use.
type Parser struct {
	loc     *time.Location
	layouts []string
	logger  elog.Logger
}

// New builds a Parser.  An unresolvable Config.Zone fails with
// eerror.ErrInvalidTimezone.
func New(cfg Config) (*Parser, error) {
	loc, err := ezone.Resolve(cfg.Zone)
	if err != nil {
		return nil, err
	}
	layouts := cfg.Layouts
	if layouts == nil {
		layouts = defaultLayouts
	}
	return &Parser{
		loc:     loc,
		layouts: dedupe(layouts),
		logger:  cfg.Logger,
	}, nil
}

// dedupe drops repeated layouts, keeping the first occurrence so the
// caller's priority order survives.
func dedupe(layouts []string) []string {
	seen := make(map[string]struct{}, len(layouts))
	out := make([]string, 0, len(layouts))
	for _, l := range layouts {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Zone returns the Parser's default location.
func (p *Parser) Zone() *time.Location { return p.loc }

func (p *Parser) log() elog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return elog.Fallback()
}

// hasOffset reports whether a layout carries its own zone information, in
// which case the input's offset beats the Parser's default zone.
func hasOffset(layout string) bool {
	return strings.Contains(layout, "Z07") ||
		strings.Contains(layout, "-07") ||
		strings.Contains(layout, "MST")
}

// ParseString tries the candidate layouts in order and returns the first
// match.  Layouts with an embedded offset are parsed as-is; layouts without
// one are interpreted in the Parser's zone.  When nothing matches, the
// result is eerror.ErrInvalidDateFormat.
func (p *Parser) ParseString(s string) (edate.Date, error) {
	log := p.log()
	for _, layout := range p.layouts {
		var t time.Time
		var err error
		if hasOffset(layout) {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, p.loc)
		}
		if err != nil {
			if log != nil {
				log.Tracef("eparse: layout %q did not match %q", layout, s)
			}
			continue
		}
		if log != nil {
			log.Debugf("eparse: %q matched layout %q", s, layout)
		}
		return p.checked(t)
	}
	return edate.Date{}, errors.Wrapf(eerror.ErrInvalidDateFormat,
		"%q matched none of %d layouts", s, len(p.layouts))
}

// ParseISO parses an ISO-8601 instant, honoring the same zone precedence as
// ParseString.  It accepts optional fractional seconds and "Z", "+HH:MM",
// "-HHMM", or "+HH" offsets, independent of the configured layout list.
func (p *Parser) ParseISO(s string) (edate.Date, error) {
	return edate.ParseISO(s, p.loc)
}

// ParseFields materializes a field mapping.  Missing month and day default
// to the minimum, a missing clock to midnight, and a missing zone to the
// Parser's zone.
func (p *Parser) ParseFields(f edate.Fields) (edate.Date, error) {
	if f.Zone != "" {
		return f.Date()
	}
	month := f.Month
	if month == 0 {
		month = 1
	}
	day := f.Day
	if day == 0 {
		day = 1
	}
	return edate.New(f.Year, time.Month(month), day, f.Hour, f.Minute, f.Second, f.Microsecond, p.loc)
}

// FromTime adopts an already-built time.Time, reprojecting it into the
// Parser's zone.
func (p *Parser) FromTime(t time.Time) (edate.Date, error) {
	return p.checked(t.In(p.loc))
}

func (p *Parser) checked(t time.Time) (edate.Date, error) {
	return edate.FromTime(t)
}
