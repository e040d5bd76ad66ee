package motion

import "math"

// Rect is an axis-aligned box in page coordinates, y growing downwards.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and other share a region of positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return math.Max(r.Left, other.Left) < math.Min(r.Right, other.Right) &&
		math.Max(r.Top, other.Top) < math.Min(r.Bottom, other.Bottom)
}

// Expand grows r by the insets on each side. Negative insets shrink it.
func (r Rect) Expand(in Insets) Rect {
	return Rect{
		Left:   r.Left - in.Left,
		Top:    r.Top - in.Top,
		Right:  r.Right + in.Right,
		Bottom: r.Bottom + in.Bottom,
	}
}

// Translate returns r offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Insets are signed per-side margins applied to the viewport, in the same
// sense as a CSS root margin: positive values fire the trigger before the
// element is on screen, negative values only once it is that far inside.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformMargin applies v to all four sides.
func UniformMargin(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Trigger watches one element against the viewport.
//
// With once set (the only mode the site uses) the signal is a Latch: the first
// sample where the element meets the margin-adjusted viewport sets it, and all
// later samples are ignored, so scrolling the element out and back in again
// never flickers it. Without once the signal follows visibility and OnEnter
// listeners fire on every entry.
type Trigger struct {
	margin  Insets
	once    bool
	latch   Latch
	visible bool
	enter   []func()
}

// NewTrigger creates a trigger with the given viewport margin.
func NewTrigger(margin Insets, once bool) *Trigger {
	return &Trigger{margin: margin, once: once}
}

// Observe feeds one layout or scroll sample and returns the signal.
func (t *Trigger) Observe(element, viewport Rect) bool {
	if t.once {
		if t.latch.IsSet() {
			return true
		}
		if element.Intersects(viewport.Expand(t.margin)) {
			t.latch.Set()
		}
		return t.latch.IsSet()
	}

	in := element.Intersects(viewport.Expand(t.margin))
	entered := in && !t.visible
	t.visible = in
	if entered {
		for _, fn := range t.enter {
			fn()
		}
	}
	return in
}

// InView returns the current signal without sampling.
func (t *Trigger) InView() bool {
	if t.once {
		return t.latch.IsSet()
	}
	return t.visible
}

// OnEnter registers fn for the false to true edge. In once mode fn runs at
// most one time, immediately if the trigger already fired.
func (t *Trigger) OnEnter(fn func()) {
	if fn == nil {
		return
	}
	if t.once {
		t.latch.OnSet(fn)
		return
	}
	t.enter = append(t.enter, fn)
	if t.visible {
		fn()
	}
}
