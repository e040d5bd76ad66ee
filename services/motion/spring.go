package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultSettleDuration is the nominal time a counter takes to reach its target.
	DefaultSettleDuration = 2 * time.Second

	// RestDelta is how close to the target a spring must be to count as settled.
	RestDelta = 0.01
	// RestSpeed is the matching velocity bound, in units per second.
	RestSpeed = 0.1

	// settleFactor is ω·D: the spring's angular frequency times its settle
	// duration. At 10 a critically damped spring has covered 99.95% of the
	// distance when the duration runs out.
	settleFactor = 10.0

	minDampingRatio = 0.05
)

// Spring is a duration-parameterised damped spring. Bounce 0 gives critical
// damping, which approaches the target without ever passing it.
type Spring struct {
	Duration time.Duration
	Bounce   float64
}

// NewSpring returns a spring that settles in roughly d.
func NewSpring(d time.Duration, bounce float64) Spring {
	return Spring{Duration: d, Bounce: bounce}
}

// DefaultSpring is the 2s, no-bounce spring used by the trust counters.
func DefaultSpring() Spring {
	return NewSpring(DefaultSettleDuration, 0)
}

// AngularFrequency returns ω in radians per second.
func (s Spring) AngularFrequency() float64 {
	if s.Duration <= 0 {
		return math.Inf(1)
	}
	return settleFactor / s.Duration.Seconds()
}

// DampingRatio maps bounce onto ζ = 1 - bounce, kept in (0, 1].
func (s Spring) DampingRatio() float64 {
	z := 1 - s.Bounce
	if z > 1 {
		return 1
	}
	if z < minDampingRatio {
		return minDampingRatio
	}
	return z
}

// Overshoots reports whether the spring can travel past its target.
func (s Spring) Overshoots() bool {
	return s.DampingRatio() < 1
}

// Step advances pos and vel towards target by dt.
func (s Spring) Step(pos, vel, target float64, dt time.Duration) (float64, float64) {
	if dt <= 0 {
		return pos, vel
	}
	if s.Duration <= 0 {
		return target, 0
	}
	h := harmonica.NewSpring(dt.Seconds(), s.AngularFrequency(), s.DampingRatio())
	return h.Update(pos, vel, target)
}

// AtRest reports whether a spring at pos with velocity vel has settled on target.
func (s Spring) AtRest(pos, vel, target float64) bool {
	return math.Abs(target-pos) < RestDelta && math.Abs(vel) < RestSpeed
}
