// Package testutil holds small helpers shared by the package tests.
package testutil

import (
	"context"
	"sync"
	"time"

	coreport "boomstream/internal/domain/port/core"
)

// FakeClock is a TimeProvider whose current time is set by the test.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a fake clock pinned at the given instant
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the pinned instant
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to a new instant
func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Since returns the elapsed time relative to the pinned instant
func (c *FakeClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

// Until returns the remaining time relative to the pinned instant
func (c *FakeClock) Until(t time.Time) coreport.Duration {
	return coreport.Duration(t.Sub(c.Now()))
}

// Sleep is a no-op; tests advance the clock explicitly
func (c *FakeClock) Sleep(coreport.Duration) {}

// WithTimeout returns a cancellable context; the deadline is not simulated
func (c *FakeClock) WithTimeout(ctx context.Context, _ coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

// ParseDuration parses a duration string
func (c *FakeClock) ParseDuration(s string) (coreport.Duration, error) {
	d, err := time.ParseDuration(s)
	return coreport.Duration(d), err
}
