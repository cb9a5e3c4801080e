package anim

import colorful "github.com/lucasb-eyer/go-colorful"

// Background is a two-stop vertical gradient: Top at the first screen
// row, Bottom at the last, blended linearly between.
type Background struct {
	Top    colorful.Color
	Bottom colorful.Color
}

// Scene backgrounds: daytime beach and night skyline. The transition
// between them runs over the same scroll span as the wave crossing.
var (
	beachBackground = Background{
		Top:    mustHex("#87ceeb"),
		Bottom: mustHex("#f2e3c0"),
	}
	cityBackground = Background{
		Top:    mustHex("#0c1030"),
		Bottom: mustHex("#2a1a45"),
	}
	backgroundBlend = Curve{{0.25, 0}, {0.4, 1}}
)

// BackgroundAt returns the background gradient for the smoothed scroll
// fraction, each stop interpolated per channel between the beach and
// city scenes.
func BackgroundAt(f float64) Background {
	t := backgroundBlend.At(f)
	return Background{
		Top:    beachBackground.Top.BlendRgb(cityBackground.Top, t),
		Bottom: beachBackground.Bottom.BlendRgb(cityBackground.Bottom, t),
	}
}

// Row returns the background color at screen row of height rows.
func (b Background) Row(row, height int) colorful.Color {
	if height <= 1 {
		return b.Top
	}
	t := float64(row) / float64(height-1)
	return b.Top.BlendRgb(b.Bottom, Clamp01(t))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("anim: bad hex color " + s)
	}
	return c
}
