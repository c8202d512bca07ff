package eones_test

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/roldriel/eones"
	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/edelta"
	"github.com/roldriel/eones/ehumanize"
	"github.com/roldriel/eones/eparse"
	"github.com/roldriel/eones/erange"
)

// This example walks through the pieces of eones and how they fit together:
// parse a value, shift it with a delta, compare it, and slice its period
// bounds.
func Example() {
	// Parse a value in a default zone.  The layout list is ordered and the
	// first match wins; an offset embedded in the input always beats the
	// configured zone.
	e, err := eones.FromString("2024-12-25T15:30:00+03:00", eones.Config{Zone: "Europe/Madrid"})
	if err != nil {
		panic(err)
	}
	fmt.Println("parsed:", e.ISO())

	// Calendar arithmetic clamps at month ends; duration arithmetic counts
	// absolute elapsed time.  A Delta carries both, calendar part first.
	if err := e.Add(edelta.Delta{
		Calendar: edelta.Calendar{Months: 2},
		Duration: edelta.Duration{Hours: 4},
	}); err != nil {
		panic(err)
	}
	fmt.Println("shifted:", e.ISO())

	// Deltas round-trip through ISO-8601 duration strings.
	dl, err := edelta.ParseISO("P1Y2M3DT4H30M")
	if err != nil {
		panic(err)
	}
	fmt.Println("duration:", dl.String())

	// Period bounds for any supported unit, Monday-opened weeks.
	start, end, err := e.Range(edate.UnitMonth)
	if err != nil {
		panic(err)
	}
	fmt.Println("month:", start.Format("2006-01-02"), "..", end.Format("2006-01-02"))

	// Output:
	// parsed: 2024-12-25T15:30:00+03:00
	// shifted: 2025-02-25T19:30:00+03:00
	// duration: 1y 2mo 3d 4h 30m
	// month: 2025-02-01 .. 2025-02-28
}

// A standalone Parser is the right tool when many values share one layout
// and zone configuration.
func Example_parser() {
	p, err := eparse.New(eparse.Config{Zone: "UTC", Layouts: []string{"02/01/2006"}})
	if err != nil {
		panic(err)
	}
	d, err := p.ParseString("15/06/2025")
	if err != nil {
		panic(err)
	}
	fmt.Println(d.ISO())
	// Output: 2025-06-15T00:00:00Z
}

func Example_weekBounds() {
	d, err := edate.ParseISO("2025-06-11", time.UTC)
	if err != nil {
		panic(err)
	}
	calc := erange.Calculator{WeekStart: time.Monday}
	start, end, err := calc.Bounds(d, edate.UnitWeek)
	if err != nil {
		panic(err)
	}
	fmt.Println(start.Format("2006-01-02"), "..", end.Format("2006-01-02"))
	// Output: 2025-06-09 .. 2025-06-15
}

func Example_humanize() {
	now, err := edate.ParseISO("2025-06-15T12:00:00", time.UTC)
	if err != nil {
		panic(err)
	}
	then, err := edate.ParseISO("2025-06-15T09:00:00", time.UTC)
	if err != nil {
		panic(err)
	}
	fmt.Println(ehumanize.DiffForHumans(then, now, "en"))
	fmt.Println(ehumanize.DiffForHumans(then, now, "es"))
	// Output:
	// 3 hours ago
	// hace 3 horas
}
