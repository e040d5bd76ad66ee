package motion

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// CounterState is the lifecycle stage of a Counter.
//
//	         Trigger()              within RestDelta or
//	Idle ─────────────► Animating ─────────────────────► Settled
//	                        ▲         duration elapsed      │
//	                        └──────── SetTarget() ──────────┘
type CounterState int

const (
	// CounterIdle: not triggered yet, pinned at 0, no frame subscription.
	CounterIdle CounterState = iota
	// CounterAnimating: subscribed to the frame loop, easing towards the target.
	CounterAnimating
	// CounterSettled: showing the target exactly, unsubscribed.
	CounterSettled
)

func (s CounterState) String() string {
	switch s {
	case CounterIdle:
		return "idle"
	case CounterAnimating:
		return "animating"
	case CounterSettled:
		return "settled"
	default:
		return fmt.Sprintf("CounterState(%d)", int(s))
	}
}

// Counter drives a displayed integer from 0 to a target with a spring once it
// is triggered. The displayed value is the floor of the spring position,
// refreshed on each frame of the loop it was created with.
//
// A Counter holds a frame subscription only while animating. Dispose releases
// it unconditionally; after that every method is a no-op and stale frames are
// ignored.
type Counter struct {
	loop   *FrameLoop
	spring Spring

	target  float64
	origin  float64
	pos     float64
	vel     float64
	display int
	state   CounterState

	triggered  bool
	startTime  time.Time
	lastSample time.Time
	settleBy   time.Time

	sub            *Subscription
	listeners      map[int]func(int)
	nextListenerID int
	disposed       bool
}

// CounterOption configures a Counter.
type CounterOption func(*Counter)

// WithSpring overrides the default 2s critically damped spring.
func WithSpring(s Spring) CounterOption {
	return func(c *Counter) {
		c.spring = s
	}
}

// NewCounter creates an idle counter. Non-finite targets are treated as 0.
func NewCounter(loop *FrameLoop, target float64, opts ...CounterOption) *Counter {
	c := &Counter{
		loop:      loop,
		spring:    DefaultSpring(),
		target:    finite(target),
		state:     CounterIdle,
		listeners: make(map[int]func(int)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bind starts the counter when t first reports the element in view.
func (c *Counter) Bind(t *Trigger) {
	t.OnEnter(c.Trigger)
}

// Trigger is the false to true edge of the visibility signal. Only the first
// call has an effect.
func (c *Counter) Trigger() {
	if c.disposed || c.triggered {
		return
	}
	c.triggered = true
	now := c.loop.Now()
	c.startTime = now
	c.begin(now)
}

// SetTarget retargets the counter. Before the trigger it only records the new
// target; afterwards the spring keeps its position and velocity and heads for
// the new value.
func (c *Counter) SetTarget(target float64) {
	target = finite(target)
	if c.disposed || target == c.target {
		return
	}
	if !c.triggered {
		c.target = target
		return
	}
	now := c.loop.Now()
	if c.state == CounterAnimating {
		c.advance(now)
	}
	c.target = target
	c.begin(now)
}

func (c *Counter) begin(now time.Time) {
	c.origin = c.pos
	c.lastSample = now
	c.settleBy = now.Add(c.spring.Duration)

	if c.pos == c.target && c.vel == 0 {
		c.settle()
		return
	}

	c.state = CounterAnimating
	if !c.sub.Active() {
		c.sub = c.loop.Subscribe(c.frame)
	}
}

// settleSlack absorbs the nanoseconds lost when a host steps its clock by a
// truncated FrameInterval, so the frame due at the deadline still settles.
const settleSlack = time.Millisecond

func (c *Counter) frame(now time.Time) {
	if c.disposed || c.state != CounterAnimating {
		return
	}
	c.advance(now)

	if c.settleBy.Sub(now) < settleSlack || c.spring.AtRest(c.pos, c.vel, c.target) {
		c.settle()
		return
	}
	c.setDisplay(c.bound(int(math.Floor(c.pos))))
}

func (c *Counter) advance(now time.Time) {
	dt := now.Sub(c.lastSample)
	if dt <= 0 {
		return
	}
	c.pos, c.vel = c.spring.Step(c.pos, c.vel, c.target, dt)
	c.lastSample = now
}

// bound keeps the displayed value between the run's origin and target and
// stops it from stepping backwards, whatever the spring does in between.
func (c *Counter) bound(v int) int {
	lo := int(math.Floor(math.Min(c.origin, c.target)))
	hi := int(math.Floor(math.Max(c.origin, c.target)))
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if c.target >= c.origin && v < c.display {
		v = c.display
	}
	if c.target < c.origin && v > c.display {
		v = c.display
	}
	return v
}

func (c *Counter) settle() {
	c.pos = c.target
	c.vel = 0
	c.state = CounterSettled
	c.sub.Cancel()
	c.sub = nil
	c.setDisplay(int(math.Floor(c.target)))
}

func (c *Counter) setDisplay(v int) {
	if v == c.display {
		return
	}
	c.display = v
	for _, fn := range c.listeners {
		fn(v)
	}
}

// Value returns the displayed integer.
func (c *Counter) Value() int {
	return c.display
}

// Text renders the displayed value followed by suffix, e.g. "500+".
func (c *Counter) Text(suffix string) string {
	return strconv.Itoa(c.display) + suffix
}

// Target returns the value the counter is heading for.
func (c *Counter) Target() float64 {
	return c.target
}

// State returns the lifecycle stage.
func (c *Counter) State() CounterState {
	return c.state
}

// StartTime returns when the counter was triggered. ok is false while idle.
func (c *Counter) StartTime() (t time.Time, ok bool) {
	return c.startTime, c.triggered
}

// Triggered reports whether Trigger has been called.
func (c *Counter) Triggered() bool {
	return c.triggered
}

// OnChange adds a callback that fires whenever the displayed value changes.
// Returns an unsubscribe function.
func (c *Counter) OnChange(fn func(int)) func() {
	if c.disposed || fn == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose cancels the frame subscription and drops listeners.
func (c *Counter) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.sub.Cancel()
	c.sub = nil
	c.listeners = nil
}

// Disposed reports whether Dispose has been called.
func (c *Counter) Disposed() bool {
	return c.disposed
}

// Keyframes samples a complete counter run at fps on a manual clock and
// returns the displayed value after each frame, ending with the target.
// frames[i] is the value at FrameOffset(fps, i+1) after the trigger. A target
// the counter is already showing needs no frames and yields an empty track.
func Keyframes(target float64, fps int, spring Spring) []int {
	frames := []int{}
	if fps <= 0 {
		return frames
	}

	start := time.Unix(0, 0)
	clock := NewManualClock(start)
	loop := NewFrameLoop(clock)
	c := NewCounter(loop, target, WithSpring(spring))
	defer c.Dispose()

	c.Trigger()
	limit := FramesFor(spring.Duration, fps) + 1
	for i := 1; c.State() == CounterAnimating && i <= limit; i++ {
		clock.Set(start.Add(FrameOffset(fps, i)))
		loop.Tick()
		frames = append(frames, c.Value())
	}
	return frames
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
