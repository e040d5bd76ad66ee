package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop() (*ManualClock, *FrameLoop) {
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return clock, NewFrameLoop(clock)
}

// runFrames advances the clock by step n times, ticking the loop each time.
func runFrames(clock *ManualClock, loop *FrameLoop, step time.Duration, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(step)
		loop.Tick()
	}
}

func TestCounterIdleStaysAtZero(t *testing.T) {
	for _, target := range []float64{0, 25, 500, 1200} {
		clock, loop := newTestLoop()
		c := NewCounter(loop, target)

		runFrames(clock, loop, 16*time.Millisecond, 400)

		assert.Equal(t, 0, c.Value())
		assert.Equal(t, CounterIdle, c.State())
		assert.Equal(t, 0, loop.Active(), "idle counter must not hold a frame subscription")
		_, ok := c.StartTime()
		assert.False(t, ok)
	}
}

func TestCounterReachesTargetAfterSettleDuration(t *testing.T) {
	for _, target := range []float64{1, 25, 98, 500, 1200, 1_000_000} {
		clock, loop := newTestLoop()
		c := NewCounter(loop, target)
		c.Trigger()
		require.Equal(t, CounterAnimating, c.State())

		clock.Advance(DefaultSettleDuration)
		loop.Tick()

		assert.Equal(t, int(target), c.Value(), "target %v", target)
		assert.Equal(t, CounterSettled, c.State())
		assert.Equal(t, 0, loop.Active())
	}
}

func TestCounterScenario500(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 500)
	t0 := clock.Now()
	c.Trigger()

	start, ok := c.StartTime()
	require.True(t, ok)
	assert.Equal(t, t0, start)

	clock.Advance(100 * time.Millisecond)
	loop.Tick()
	assert.Greater(t, c.Value(), 0)
	assert.Less(t, c.Value(), 500)

	clock.Set(t0.Add(2000 * time.Millisecond))
	loop.Tick()
	assert.Equal(t, 500, c.Value())
}

func TestCounterSettlesOnLastFrameAtEveryRate(t *testing.T) {
	for _, fps := range []int{24, 30, 60, 120, 144, 240} {
		clock, loop := newTestLoop()
		c := NewCounter(loop, 500)
		c.Trigger()

		// One frame short of the deadline the counter is still easing in
		n := FramesFor(DefaultSettleDuration, fps)
		runFrames(clock, loop, FrameInterval(fps), n-1)
		require.Equal(t, CounterAnimating, c.State(), "fps %d", fps)
		assert.Less(t, c.Value(), 500, "fps %d", fps)

		runFrames(clock, loop, FrameInterval(fps), 1)
		assert.Equal(t, 500, c.Value(), "fps %d", fps)
		assert.Equal(t, CounterSettled, c.State(), "fps %d", fps)
	}
}

func TestCounterIsMonotonic(t *testing.T) {
	for _, target := range []float64{3, 25, 98, 500, 1200, 987654} {
		clock, loop := newTestLoop()
		c := NewCounter(loop, target)
		c.Trigger()

		prev := c.Value()
		for i := 0; i < 200; i++ {
			clock.Advance(16 * time.Millisecond)
			loop.Tick()
			v := c.Value()
			require.GreaterOrEqual(t, v, prev, "target %v frame %d", target, i)
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, int(target))
			prev = v
		}
		assert.Equal(t, int(target), c.Value())
	}
}

func TestCounterTriggerIsIdempotent(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 500)
	c.Trigger()
	first, _ := c.StartTime()

	runFrames(clock, loop, 50*time.Millisecond, 10)
	mid := c.Value()
	require.Greater(t, mid, 0)

	c.Trigger()
	again, _ := c.StartTime()
	assert.Equal(t, first, again)
	assert.Equal(t, 1, loop.Active())

	runFrames(clock, loop, 16*time.Millisecond, 1)
	assert.GreaterOrEqual(t, c.Value(), mid, "second trigger must not restart the animation")
}

func TestCounterZeroTargetNeedsNoFrames(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 0)
	c.Trigger()

	assert.Equal(t, CounterSettled, c.State())
	assert.Equal(t, 0, loop.Active())

	runFrames(clock, loop, 16*time.Millisecond, 10)
	assert.Equal(t, 0, c.Value())
}

func TestCounterDisposeMidAnimation(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 1200)
	calls := 0
	c.OnChange(func(int) { calls++ })
	c.Trigger()

	runFrames(clock, loop, 16*time.Millisecond, 20)
	require.Equal(t, CounterAnimating, c.State())
	before := c.Value()
	seen := calls

	c.Dispose()
	assert.True(t, c.Disposed())
	assert.Equal(t, 0, loop.Active())

	assert.NotPanics(t, func() {
		runFrames(clock, loop, 16*time.Millisecond, 200)
		c.Trigger()
		c.SetTarget(10)
		c.Dispose()
	})
	assert.Equal(t, before, c.Value())
	assert.Equal(t, seen, calls)
}

func TestCounterRetargetKeepsProgress(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 500)
	c.Trigger()
	runFrames(clock, loop, 50*time.Millisecond, 10)
	mid := c.Value()
	require.Greater(t, mid, 0)

	c.SetTarget(1000)
	assert.Equal(t, CounterAnimating, c.State())
	assert.Equal(t, 1, loop.Active())

	runFrames(clock, loop, 16*time.Millisecond, 1)
	assert.GreaterOrEqual(t, c.Value(), mid)

	clock.Advance(DefaultSettleDuration)
	loop.Tick()
	assert.Equal(t, 1000, c.Value())
	assert.Equal(t, CounterSettled, c.State())
}

func TestCounterRetargetAfterSettle(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 100)
	c.Trigger()
	clock.Advance(DefaultSettleDuration)
	loop.Tick()
	require.Equal(t, CounterSettled, c.State())

	c.SetTarget(40)
	require.Equal(t, CounterAnimating, c.State())
	prev := c.Value()
	for i := 0; i < 130; i++ {
		clock.Advance(16 * time.Millisecond)
		loop.Tick()
		require.LessOrEqual(t, c.Value(), prev)
		require.GreaterOrEqual(t, c.Value(), 40)
		prev = c.Value()
	}
	assert.Equal(t, 40, c.Value())
}

func TestCounterSetTargetBeforeTrigger(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 10)
	c.SetTarget(98)

	runFrames(clock, loop, 16*time.Millisecond, 10)
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, 98.0, c.Target())
	assert.Equal(t, CounterIdle, c.State())
}

func TestCounterNegativeTarget(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, -50)
	c.Trigger()

	for i := 0; i < 150; i++ {
		clock.Advance(16 * time.Millisecond)
		loop.Tick()
		require.LessOrEqual(t, c.Value(), 0)
		require.GreaterOrEqual(t, c.Value(), -50)
	}
	assert.Equal(t, -50, c.Value())
}

func TestCounterNonFiniteTarget(t *testing.T) {
	_, loop := newTestLoop()
	assert.Equal(t, 0.0, NewCounter(loop, math.NaN()).Target())
	assert.Equal(t, 0.0, NewCounter(loop, math.Inf(1)).Target())
}

func TestCounterBoundToTrigger(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 98)
	trig := NewTrigger(UniformMargin(-100), true)
	c.Bind(trig)

	element := RectXYWH(0, 1000, 300, 200)
	trig.Observe(element, RectXYWH(0, 0, 1280, 800))
	assert.Equal(t, CounterIdle, c.State())

	trig.Observe(element, RectXYWH(0, 400, 1280, 800))
	assert.Equal(t, CounterAnimating, c.State())

	// Leaving and re-entering must not restart the run.
	runFrames(clock, loop, 100*time.Millisecond, 5)
	mid := c.Value()
	trig.Observe(element, RectXYWH(0, 0, 1280, 800))
	trig.Observe(element, RectXYWH(0, 400, 1280, 800))
	runFrames(clock, loop, 16*time.Millisecond, 1)
	assert.GreaterOrEqual(t, c.Value(), mid)
}

func TestCounterText(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 98)
	assert.Equal(t, "0%", c.Text("%"))

	c.Trigger()
	clock.Advance(3 * time.Second)
	loop.Tick()
	assert.Equal(t, "98%", c.Text("%"))
}

func TestCounterOnChangeUnsubscribe(t *testing.T) {
	clock, loop := newTestLoop()
	c := NewCounter(loop, 500)
	var values []int
	stop := c.OnChange(func(v int) { values = append(values, v) })
	c.Trigger()

	runFrames(clock, loop, 16*time.Millisecond, 10)
	require.NotEmpty(t, values)
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}

	stop()
	n := len(values)
	runFrames(clock, loop, 16*time.Millisecond, 10)
	assert.Len(t, values, n)
}

func TestKeyframes(t *testing.T) {
	t.Run("Converges", func(t *testing.T) {
		frames := Keyframes(500, 60, DefaultSpring())
		require.NotEmpty(t, frames)
		assert.Equal(t, 500, frames[len(frames)-1])
		assert.LessOrEqual(t, len(frames), 120)
		for i := 1; i < len(frames); i++ {
			assert.GreaterOrEqual(t, frames[i], frames[i-1])
		}
	})

	t.Run("OneFramePerInterval", func(t *testing.T) {
		for _, fps := range []int{30, 60, 144} {
			frames := Keyframes(500, fps, DefaultSpring())
			require.Len(t, frames, 2*fps, "fps %d", fps)
			assert.Equal(t, 500, frames[2*fps-1], "fps %d", fps)
			assert.Less(t, frames[2*fps-2], 500, "fps %d", fps)
		}
	})

	t.Run("ZeroTarget", func(t *testing.T) {
		assert.Empty(t, Keyframes(0, 60, DefaultSpring()))
	})

	t.Run("InvalidFPS", func(t *testing.T) {
		assert.Empty(t, Keyframes(500, 0, DefaultSpring()))
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, Keyframes(1200, 30, DefaultSpring()), Keyframes(1200, 30, DefaultSpring()))
	})
}

func TestCounterStateString(t *testing.T) {
	assert.Equal(t, "idle", CounterIdle.String())
	assert.Equal(t, "animating", CounterAnimating.String())
	assert.Equal(t, "settled", CounterSettled.String())
	assert.Equal(t, "CounterState(9)", CounterState(9).String())
}
