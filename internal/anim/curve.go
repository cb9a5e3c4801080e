package anim

// Stop is a single (breakpoint, value) pair on an animation curve.
type Stop struct {
	At    float64
	Value float64
}

// Curve is a piecewise-linear function over an ordered list of stops.
// Outside the defined range it clamps flat to the first/last value, so
// it is total over the real line. Consecutive stops with equal values
// form deliberate hold plateaus.
type Curve []Stop

// At evaluates the curve at scroll fraction f. Input is clamped to
// [0,1] before lookup.
func (c Curve) At(f float64) float64 {
	if len(c) == 0 {
		return 0
	}
	f = Clamp01(f)

	if f <= c[0].At {
		return c[0].Value
	}
	last := c[len(c)-1]
	if f >= last.At {
		return last.Value
	}

	for i := 0; i < len(c)-1; i++ {
		a, b := c[i], c[i+1]
		if f < a.At || f >= b.At {
			continue
		}
		span := b.At - a.At
		if span == 0 {
			return b.Value
		}
		t := (f - a.At) / span
		return lerp(a.Value, b.Value, t)
	}
	return last.Value
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
