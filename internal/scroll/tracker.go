// Package scroll tracks the normalized scroll position and smooths it
// with a damped spring so motion reads as continuous instead of
// stepwise.
package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate the spring integrates at.
const DefaultFPS = 60

// restThreshold is the epsilon under which the spring counts as
// settled: both the distance to the target and the velocity must be
// below it.
const restThreshold = 0.001

// Tracker holds the raw scroll fraction and its spring-smoothed shadow.
// Both stay clamped to [0,1]. It is only mutated from Bubbletea's
// single-threaded Update loop.
type Tracker struct {
	spring   harmonica.Spring
	raw      float64
	smoothed float64
	velocity float64
}

// NewTracker returns a tracker using an over-damped spring tuned for
// scroll following. frequency and damping follow harmonica's
// conventions; damping >= 1 means no overshoot.
func NewTracker(fps int, frequency, damping float64) *Tracker {
	return &Tracker{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// SetTarget retargets the spring. Out-of-range input is clamped, never
// rejected.
func (t *Tracker) SetTarget(raw float64) {
	t.raw = clamp01(raw)
}

// Jump moves both raw and smoothed directly to the given fraction and
// kills any residual velocity. Used for instant repositioning (top and
// bottom jumps) where animating the whole travel would be noise.
func (t *Tracker) Jump(raw float64) {
	t.raw = clamp01(raw)
	t.smoothed = t.raw
	t.velocity = 0
}

// Step advances the spring by one frame and returns the new smoothed
// fraction.
func (t *Tracker) Step() float64 {
	pos, vel := t.spring.Update(t.smoothed, t.velocity, t.raw)
	t.smoothed = clamp01(pos)
	t.velocity = vel
	if t.Settled() {
		t.smoothed = t.raw
		t.velocity = 0
	}
	return t.smoothed
}

// Raw returns the exact normalized scroll offset.
func (t *Tracker) Raw() float64 { return t.raw }

// Smoothed returns the spring-lagged scroll fraction.
func (t *Tracker) Smoothed() float64 { return t.smoothed }

// Settled reports whether the spring is within its rest threshold of
// the target. Once settled, frame ticking can stop until the next
// scroll event.
func (t *Tracker) Settled() bool {
	return math.Abs(t.smoothed-t.raw) < restThreshold &&
		math.Abs(t.velocity) < restThreshold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
