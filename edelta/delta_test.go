package edelta_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roldriel/eones/edate"
	"github.com/roldriel/eones/edelta"
	"github.com/roldriel/eones/eerror"
)

func mustISO(t *testing.T, s string) edate.Date {
	t.Helper()
	d, err := edate.ParseISO(s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestCalendarApplyClamping(t *testing.T) {
	testcases := map[string]struct {
		Start string
		Cal   edelta.Calendar
		Want  string
	}{
		"jan31-plus-month-leap":     {Start: "2024-01-31", Cal: edelta.Calendar{Months: 1}, Want: "2024-02-29"},
		"jan31-plus-month-non-leap": {Start: "2023-01-31", Cal: edelta.Calendar{Months: 1}, Want: "2023-02-28"},
		"feb29-plus-year":           {Start: "2024-02-29", Cal: edelta.Calendar{Years: 1}, Want: "2025-02-28"},
		"months-then-days":          {Start: "2024-01-31", Cal: edelta.Calendar{Months: 1, Days: 1}, Want: "2024-03-01"},
		"days-cross-month":          {Start: "2025-06-28", Cal: edelta.Calendar{Days: 5}, Want: "2025-07-03"},
		"negative-month":            {Start: "2025-03-31", Cal: edelta.Calendar{Months: -1}, Want: "2025-02-28"},
		"year-and-months":           {Start: "2023-11-15", Cal: edelta.Calendar{Years: 1, Months: 2}, Want: "2025-01-15"},
	}
	for tcname, tcinfo := range testcases {
		tcinfo := tcinfo
		t.Run(tcname, func(t *testing.T) {
			got, err := tcinfo.Cal.Apply(mustISO(t, tcinfo.Start))
			require.NoError(t, err)
			assert.Equal(t, tcinfo.Want, got.Format("2006-01-02"))
		})
	}
}

func TestApplyOrderIsCalendarThenDays(t *testing.T) {
	// Jan 31 + 1 month + 1 day must clamp first (Feb 29) and step after
	// (Mar 1).  Adding the day first would land on Feb 1 + 1 month = Mar 1
	// too, but Jan 31 + 1 month + 1 day in a non-leap year shows the
	// difference: Feb 28 -> Mar 1, not Feb 29.
	got, err := edelta.Calendar{Months: 1, Days: 1}.Apply(mustISO(t, "2023-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01", got.Format("2006-01-02"))
}

func TestDurationMicros(t *testing.T) {
	u := edelta.Duration{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Microseconds: 5}
	want := int64(26*3600+3*60+4)*1e6 + 5
	assert.Equal(t, want, u.Micros())
	assert.Equal(t, time.Duration(want)*time.Microsecond, u.Std())
}

func TestDurationApplyIsAbsoluteAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 02:00 EST springs forward to 03:00 EDT.
	start, err := edate.New(2024, time.March, 10, 0, 0, 0, 0, ny)
	require.NoError(t, err)

	moved, err := edelta.Duration{Hours: 24}.Apply(start)
	require.NoError(t, err)

	// Exactly 86,400 real seconds later, which is 01:00 on the civil clock.
	assert.Equal(t, int64(86400*1e6), moved.UnixMicro()-start.UnixMicro())
	assert.Equal(t, 1, moved.Hour())
	assert.Equal(t, 11, moved.Day())

	// The calendar-day shift keeps the wall clock instead.
	civil, err := edelta.Calendar{Days: 1}.Apply(start)
	require.NoError(t, err)
	assert.Equal(t, 0, civil.Hour())
	assert.Equal(t, int64(82800*1e6), civil.UnixMicro()-start.UnixMicro())
}

func TestDeltaApplyCalendarFirst(t *testing.T) {
	dl := edelta.Delta{
		Calendar: edelta.Calendar{Months: 1},
		Duration: edelta.Duration{Hours: 25},
	}
	got, err := dl.Apply(mustISO(t, "2024-01-31T00:00:00"))
	require.NoError(t, err)
	// Jan 31 -> Feb 29 (clamped), then +25h -> Mar 1 01:00.
	assert.Equal(t, "2024-03-01T01:00:00Z", got.ISO())
}

func TestDeltaOverflow(t *testing.T) {
	top := mustISO(t, "9999-12-31")
	_, err := edelta.Delta{Calendar: edelta.Calendar{Days: 1}}.Apply(top)
	assert.True(t, errors.Is(err, eerror.ErrCalendarOverflow))

	_, err = edelta.Delta{Duration: edelta.Duration{Hours: 25}}.Apply(top)
	assert.True(t, errors.Is(err, eerror.ErrCalendarOverflow))
}

func TestNegateScaleZero(t *testing.T) {
	dl := edelta.Delta{
		Calendar: edelta.Calendar{Years: 1, Months: -2, Days: 3},
		Duration: edelta.Duration{Hours: 4, Minutes: -30},
	}
	neg := dl.Negate()
	assert.Equal(t, edelta.Calendar{Years: -1, Months: 2, Days: -3}, neg.Calendar)
	assert.Equal(t, int64(0), dl.Duration.Micros()+neg.Duration.Micros())
	assert.True(t, dl.Add(neg).IsZero())

	doubled := dl.Scale(2)
	assert.Equal(t, edelta.Calendar{Years: 2, Months: -4, Days: 6}, doubled.Calendar)
	assert.Equal(t, dl.Duration.Micros()*2, doubled.Duration.Micros())

	assert.True(t, edelta.Delta{}.IsZero())
	assert.False(t, dl.IsZero())
}

func TestAddSub(t *testing.T) {
	a := edelta.Delta{Calendar: edelta.Calendar{Months: 1}, Duration: edelta.Duration{Hours: 2}}
	b := edelta.Delta{Calendar: edelta.Calendar{Months: 2}, Duration: edelta.Duration{Hours: 1}}

	sum := a.Add(b)
	assert.Equal(t, 3, sum.Calendar.Months)
	assert.Equal(t, int64(3), sum.Duration.Hours)

	diff := b.Sub(a)
	assert.Equal(t, 1, diff.Calendar.Months)
	assert.Equal(t, int64(-1), diff.Duration.Hours)
}

func TestEqualNormalizes(t *testing.T) {
	a := edelta.Delta{Calendar: edelta.Calendar{Years: 1, Months: 2}}
	b := edelta.Delta{Calendar: edelta.Calendar{Months: 14}}
	assert.True(t, a.Equal(b))

	c := edelta.Delta{Duration: edelta.Duration{Days: 1}}
	d := edelta.Delta{Duration: edelta.Duration{Hours: 24}}
	assert.True(t, c.Equal(d))

	assert.False(t, a.Equal(c))
}

func TestBetweenRoundTrips(t *testing.T) {
	testcases := map[string]struct {
		A, B string
	}{
		"forward-simple":   {A: "2024-01-01T00:00:00", B: "2024-03-15T06:30:00"},
		"backward":         {A: "2025-06-15T12:00:00", B: "2024-02-29T00:00:00"},
		"clamped-anchor":   {A: "2024-01-31T00:00:00", B: "2024-02-29T00:00:00"},
		"sub-second":       {A: "2024-01-01T00:00:00", B: "2024-01-01T00:00:00.000250"},
		"same-instant":     {A: "2024-06-01T10:00:00", B: "2024-06-01T10:00:00"},
		"years-apart":      {A: "2020-05-10T08:00:00", B: "2025-11-23T21:15:45"},
	}
	for tcname, tcinfo := range testcases {
		tcinfo := tcinfo
		t.Run(tcname, func(t *testing.T) {
			a := mustISO(t, tcinfo.A)
			b := mustISO(t, tcinfo.B)
			dl := edelta.Between(a, b)
			got, err := dl.Apply(a)
			require.NoError(t, err)
			assert.True(t, got.Equal(b), "applying Between(a,b) to a must yield b, got %s", got)
		})
	}
}

func TestBetweenDecomposition(t *testing.T) {
	a := mustISO(t, "2024-01-15T00:00:00")
	b := mustISO(t, "2025-03-18T04:30:10")
	dl := edelta.Between(a, b)
	assert.Equal(t, edelta.Calendar{Years: 1, Months: 2}, dl.Calendar)
	assert.Equal(t, int64(3), dl.Duration.Days)
	assert.Equal(t, int64(4), dl.Duration.Hours)
	assert.Equal(t, int64(30), dl.Duration.Minutes)
	assert.Equal(t, int64(10), dl.Duration.Seconds)
}

func TestString(t *testing.T) {
	dl := edelta.Delta{
		Calendar: edelta.Calendar{Years: 1, Months: 2, Days: 3},
		Duration: edelta.Duration{Hours: 4, Minutes: 30},
	}
	assert.Equal(t, "1y 2mo 3d 4h 30m", dl.String())
	assert.Equal(t, "0s", edelta.Delta{}.String())
}
