// Package eclock provides the clock that backs "now" capture in eones.
//
// eclock.Now(ctx) is equivalent to time.Now() except that the clock can be
// overridden through the Context with WithClock, in order to have control
// over time for testing.  FakeClock is a ready-made override whose reading
// only moves when the test says so.
package eclock

import (
	"context"
	"sync"
	"time"
)

// Clock is the type you implement and pass to WithClock to spoof the system
// clock.  StdClock{} is the real clock; FakeClock is a controllable one.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// StdClock is the actual system clock.
type StdClock struct{}

// Now implements Clock.
func (StdClock) Now() time.Time { return time.Now() }

type clockCtxKey struct{}

// WithClock changes the Clock seen by eclock.Now for any caller holding the
// resulting Context.
func WithClock(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, clockCtxKey{}, clock)
}

// Now returns the current time according to the Clock carried by ctx, or the
// system clock if none is set.
func Now(ctx context.Context) time.Time {
	if untyped := ctx.Value(clockCtxKey{}); untyped != nil {
		return untyped.(Clock).Now()
	}
	return StdClock{}.Now()
}

// FakeClock is a Clock whose reading advances only when told to.  The zero
// value is not useful; use NewFakeClock.
type FakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

// NewFakeClock returns a FakeClock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{cur: start}
}

// Now implements Clock.
func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

// Step advances the clock by d, which may be negative.
func (f *FakeClock) Step(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = f.cur.Add(d)
}

// SetTime moves the clock to an absolute instant.
func (f *FakeClock) SetTime(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = t
}
