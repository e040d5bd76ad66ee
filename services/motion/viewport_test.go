package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"Overlap", RectXYWH(0, 0, 10, 10), RectXYWH(5, 5, 10, 10), true},
		{"Contained", RectXYWH(0, 0, 100, 100), RectXYWH(10, 10, 5, 5), true},
		{"Disjoint", RectXYWH(0, 0, 10, 10), RectXYWH(20, 20, 5, 5), false},
		{"EdgeTouch", RectXYWH(0, 0, 10, 10), RectXYWH(10, 0, 10, 10), false},
		{"EmptyElement", RectXYWH(5, 5, 0, 0), RectXYWH(0, 0, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersects(tt.a))
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := RectXYWH(0, 0, 100, 100)
	assert.Equal(t, Rect{Left: -10, Top: -10, Right: 110, Bottom: 110}, r.Expand(UniformMargin(10)))
	assert.Equal(t, Rect{Left: 10, Top: 10, Right: 90, Bottom: 90}, r.Expand(UniformMargin(-10)))
	assert.True(t, r.Expand(UniformMargin(-60)).IsEmpty())
}

func TestTriggerMargins(t *testing.T) {
	viewport := RectXYWH(0, 0, 1280, 800)

	t.Run("NegativeMarginWaitsUntilInside", func(t *testing.T) {
		trig := NewTrigger(UniformMargin(-100), true)
		element := RectXYWH(0, 700, 300, 200)
		assert.False(t, trig.Observe(element, viewport))
		assert.True(t, trig.Observe(element, viewport.Translate(0, 1)))
	})

	t.Run("PositiveMarginFiresEarly", func(t *testing.T) {
		trig := NewTrigger(UniformMargin(100), true)
		element := RectXYWH(0, 850, 300, 200)
		assert.True(t, trig.Observe(element, viewport))
	})

	t.Run("ZeroMarginNeedsOverlap", func(t *testing.T) {
		trig := NewTrigger(Insets{}, true)
		assert.False(t, trig.Observe(RectXYWH(0, 800, 10, 10), viewport))
		assert.True(t, trig.Observe(RectXYWH(0, 799, 10, 10), viewport))
	})
}

func TestTriggerOnce(t *testing.T) {
	trig := NewTrigger(UniformMargin(-50), true)
	fired := 0
	trig.OnEnter(func() { fired++ })

	element := RectXYWH(0, 1000, 100, 100)
	assert.False(t, trig.InView())
	assert.False(t, trig.Observe(element, RectXYWH(0, 0, 800, 600)))
	assert.True(t, trig.Observe(element, RectXYWH(0, 600, 800, 600)))
	// Out of view again: the signal holds.
	assert.True(t, trig.Observe(element, RectXYWH(0, 0, 800, 600)))
	assert.True(t, trig.Observe(element, RectXYWH(0, 600, 800, 600)))

	assert.Equal(t, 1, fired)
	assert.True(t, trig.InView())

	late := 0
	trig.OnEnter(func() { late++ })
	assert.Equal(t, 1, late)
}

func TestTriggerRepeating(t *testing.T) {
	trig := NewTrigger(Insets{}, false)
	fired := 0
	trig.OnEnter(func() { fired++ })

	element := RectXYWH(0, 1000, 100, 100)
	in := RectXYWH(0, 600, 800, 600)
	out := RectXYWH(0, 0, 800, 600)

	assert.True(t, trig.Observe(element, in))
	assert.True(t, trig.Observe(element, in))
	assert.False(t, trig.Observe(element, out))
	assert.False(t, trig.InView())
	assert.True(t, trig.Observe(element, in))
	assert.Equal(t, 2, fired)
}

func TestLatch(t *testing.T) {
	var l Latch
	calls := 0
	l.OnSet(func() { calls++ })
	l.OnSet(nil)

	assert.False(t, l.IsSet())
	assert.True(t, l.Set())
	assert.False(t, l.Set())
	assert.True(t, l.IsSet())
	assert.Equal(t, 1, calls)

	l.OnSet(func() { calls++ })
	assert.Equal(t, 2, calls)
}
