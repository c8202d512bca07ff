package edate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roldriel/eones/edate"
)

func TestEaster(t *testing.T) {
	testcases := map[int]string{
		2023: "2023-04-09",
		2024: "2024-03-31",
		2025: "2025-04-20",
		2026: "2026-04-05",
		2000: "2000-04-23",
		1999: "1999-04-04",
	}
	for year, want := range testcases {
		year, want := year, want
		t.Run(want, func(t *testing.T) {
			d, err := edate.Easter(year)
			require.NoError(t, err)
			assert.Equal(t, want, d.Format("2006-01-02"))
		})
	}
}
