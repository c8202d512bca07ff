// Package ehumanize renders the distance between two dates as a
// human-friendly phrase ("in 3 hours", "hace 2 días").
//
// The core hands over a normalized (unit, magnitude, direction) triple via
// Breakdown; the phrase itself comes from a locale table.  Locales "en" and
// "es" are built in, and more can be added at runtime with Register or
// loaded from YAML with LoadLocale.
package ehumanize

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/eerror"
)

// Forms holds the singular and plural nouns for one unit.
type Forms struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// Locale is the phrase table for one language.  Past and Future are
// fmt.Sprintf templates taking the magnitude and the unit noun, in that
// order.
type Locale struct {
	Past    string           `yaml:"past"`
	Future  string           `yaml:"future"`
	JustNow string           `yaml:"just_now"`
	Units   map[string]Forms `yaml:"units"`
}

var builtin = map[string]Locale{
	"en": {
		Past:    "%d %s ago",
		Future:  "in %d %s",
		JustNow: "just now",
		Units: map[string]Forms{
			"year":   {"year", "years"},
			"month":  {"month", "months"},
			"week":   {"week", "weeks"},
			"day":    {"day", "days"},
			"hour":   {"hour", "hours"},
			"minute": {"minute", "minutes"},
			"second": {"second", "seconds"},
		},
	},
	"es": {
		Past:    "hace %d %s",
		Future:  "en %d %s",
		JustNow: "ahora mismo",
		Units: map[string]Forms{
			"year":   {"año", "años"},
			"month":  {"mes", "meses"},
			"week":   {"semana", "semanas"},
			"day":    {"día", "días"},
			"hour":   {"hora", "horas"},
			"minute": {"minuto", "minutos"},
			"second": {"segundo", "segundos"},
		},
	},
}

var registry = struct { //nolint:gochecknoglobals // runtime locale registry
	sync.RWMutex
	locales map[string]Locale
}{
	locales: map[string]Locale{},
}

// Register installs or replaces a locale table under the given key.
func Register(name string, loc Locale) {
	registry.Lock()
	defer registry.Unlock()
	registry.locales[name] = loc
}

// LoadLocale parses a YAML locale table and registers it under name.
// Malformed YAML fails with eerror.ErrInvalidLocale.
func LoadLocale(name string, data []byte) error {
	var loc Locale
	if err := yaml.Unmarshal(data, &loc); err != nil {
		return errors.Wrapf(eerror.ErrInvalidLocale, "locale %q: %v", name, err)
	}
	Register(name, loc)
	return nil
}

// lookup returns the locale for name, falling back to English.
func lookup(name string) Locale {
	registry.RLock()
	loc, ok := registry.locales[name]
	registry.RUnlock()
	if ok {
		return loc
	}
	if loc, ok = builtin[name]; ok {
		return loc
	}
	return builtin["en"]
}

// unitSeconds pairs each unit with its threshold, largest first.  The month
// here is the humanizer's 30-day approximation, which is fine for phrasing
// and deliberately not the calendar arithmetic of package edelta.
var unitSeconds = []struct {
	unit string
	secs int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// Breakdown normalizes the distance from other to d into the largest unit
// that fits: the unit name, its whole magnitude, and whether d lies in
// other's future.  A sub-second distance yields magnitude 0 with unit
// "second".
func Breakdown(d, other edate.Date) (unit string, magnitude int64, future bool) {
	secs := (d.UnixMicro() - other.UnixMicro()) / 1e6
	future = secs > 0
	if secs < 0 {
		secs = -secs
	}
	for _, u := range unitSeconds {
		if secs >= u.secs {
			return u.unit, secs / u.secs, future
		}
	}
	return "second", 0, future
}

// DiffForHumans phrases the distance from other to d in the given locale.
func DiffForHumans(d, other edate.Date, locale string) string {
	loc := lookup(locale)
	unit, magnitude, future := Breakdown(d, other)
	if magnitude == 0 {
		return loc.JustNow
	}

	forms, ok := loc.Units[unit]
	if !ok {
		forms = Forms{Singular: unit, Plural: unit + "s"}
	}
	noun := forms.Plural
	if magnitude == 1 {
		noun = forms.Singular
	}
	if future {
		return fmt.Sprintf(loc.Future, magnitude, noun)
	}
	return fmt.Sprintf(loc.Past, magnitude, noun)
}
