package motion

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc is called once per frame with the loop's current time.
type FrameFunc func(now time.Time)

// FrameLoop is the per-frame update subscription registry. The host (a
// terminal program, a keyframe sampler, a test) calls Tick once per frame and
// every active subscription runs serially, in subscription order.
type FrameLoop struct {
	clock Clock

	mu     sync.Mutex
	subs   []*Subscription
	frames uint64
}

// Subscription is a handle on one registered FrameFunc. Cancel releases it.
type Subscription struct {
	loop   *FrameLoop
	fn     FrameFunc
	active atomic.Bool
}

// NewFrameLoop creates a loop reading time from clock. A nil clock means the
// system clock.
func NewFrameLoop(clock Clock) *FrameLoop {
	if clock == nil {
		clock = SystemClock()
	}
	return &FrameLoop{clock: clock}
}

// Now returns the loop's current time.
func (l *FrameLoop) Now() time.Time {
	return l.clock.Now()
}

// Subscribe registers fn to run on every subsequent Tick.
func (l *FrameLoop) Subscribe(fn FrameFunc) *Subscription {
	s := &Subscription{loop: l, fn: fn}
	s.active.Store(true)

	l.mu.Lock()
	l.subs = append(l.subs, s)
	l.mu.Unlock()
	return s
}

// Cancel removes the subscription from its loop. Safe to call more than once,
// and safe to call from inside the subscription's own callback.
func (s *Subscription) Cancel() {
	if s == nil || !s.active.CompareAndSwap(true, false) {
		return
	}
	l := s.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, sub := range l.subs {
		if sub == s {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			break
		}
	}
}

// Active reports whether the subscription still receives frames.
func (s *Subscription) Active() bool {
	return s != nil && s.active.Load()
}

// Tick runs one frame. Subscriptions cancelled by an earlier callback in the
// same frame are skipped; subscriptions added during the frame wait for the
// next one.
func (l *FrameLoop) Tick() {
	l.mu.Lock()
	l.frames++
	if len(l.subs) == 0 {
		l.mu.Unlock()
		return
	}
	// Copy so callbacks can subscribe or cancel without holding the lock.
	subs := make([]*Subscription, len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	now := l.clock.Now()
	for _, s := range subs {
		if s.active.Load() && s.fn != nil {
			s.fn(now)
		}
	}
}

// Active returns the number of live subscriptions.
func (l *FrameLoop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Frames returns how many times Tick has been called.
func (l *FrameLoop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Run calls Tick every interval until ctx is done. Callbacks then run on the
// goroutine that called Run, which becomes the loop's only goroutine.
func (l *FrameLoop) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

// FrameInterval converts a frame rate into the time between frames, truncated
// to the nanosecond.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// FrameOffset returns when frame n of a run at fps is due, measured from the
// start of the run. Unlike n*FrameInterval(fps) it does not accumulate the
// truncation, so frame fps*k lands exactly on k seconds.
func FrameOffset(fps, n int) time.Duration {
	if fps <= 0 || n <= 0 {
		return 0
	}
	return time.Duration(int64(n) * int64(time.Second) / int64(fps))
}

// FramesFor returns how many frames at fps it takes to cover d.
func FramesFor(d time.Duration, fps int) int {
	if fps <= 0 || d <= 0 {
		return 0
	}
	n := int64(d) * int64(fps)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}
