// Package motion holds the frame-driven state behind the landing page's
// animated sections: a per-frame update loop, a one-shot viewport trigger,
// a spring-eased numeric counter and the navbar's scroll and menu state.
//
// Everything here is single-threaded by contract. A FrameLoop invokes its
// subscribers serially, and every type in the package expects to be touched
// only from the goroutine that drives the loop.
package motion

import (
	"sync"
	"time"
)

// Clock provides time for animations. Tests and keyframe generation inject a
// ManualClock so that runs are deterministic.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return realClock{} }

// ManualClock only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current frozen time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
