package eclock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roldriel/eones/eclock"
)

func TestNowDefaultsToSystemClock(t *testing.T) {
	before := time.Now()
	got := eclock.Now(context.Background())
	after := time.Now()
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	fake := eclock.NewFakeClock(start)
	ctx := eclock.WithClock(context.Background(), fake)

	assert.Equal(t, start, eclock.Now(ctx))

	fake.Step(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), eclock.Now(ctx))

	fake.SetTime(start.AddDate(0, 0, 1))
	assert.Equal(t, start.AddDate(0, 0, 1), eclock.Now(ctx))
}
