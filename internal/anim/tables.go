package anim

// Breakpoint tables for the four narrative sections. Translation values
// are fractions of the viewport height (negative moves up); the
// renderer converts them to rows. The tables are fixed by design and
// not configurable at runtime.
var (
	heroOpacity    = Curve{{0, 1}, {0.15, 1}, {0.25, 0}}
	heroTranslate  = Curve{{0, 0}, {0.25, -1.0}}
	wavePosition   = Curve{{0.2, 1.0}, {0.3, 0}, {0.35, 0}, {0.45, -1.2}}
	waveOpacity    = Curve{{0.25, 0}, {0.3, 1}, {0.35, 1}, {0.4, 0}}
	cityOpacity    = Curve{{0.45, 0}, {0.55, 1}, {0.6, 1}, {0.65, 0}}
	contactOpacity = Curve{{0.65, 0}, {0.75, 1}}
)

// Section indices into Frame.Sections.
const (
	SectionHero = iota
	SectionWave
	SectionCity
	SectionContact
	sectionCount
)

// interactiveFloor is the opacity above which a section accepts input.
const interactiveFloor = 0.1

// Section holds the derived visual state of one narrative section.
type Section struct {
	Opacity     float64
	TranslateY  float64 // viewport-height fractions
	Interactive bool
}

// Frame is the full set of per-section visual parameters for one
// smoothed scroll fraction.
type Frame struct {
	Sections [sectionCount]Section
}

// Visibility derives every section's opacity, translation and
// interactivity from the smoothed scroll fraction. It is a pure
// function: one call per rendered frame, no hidden subscriptions.
func Visibility(f float64) Frame {
	f = Clamp01(f)

	var fr Frame
	fr.Sections[SectionHero] = Section{
		Opacity:    heroOpacity.At(f),
		TranslateY: heroTranslate.At(f),
	}
	fr.Sections[SectionWave] = Section{
		Opacity:    waveOpacity.At(f),
		TranslateY: wavePosition.At(f),
	}
	fr.Sections[SectionCity] = Section{
		Opacity: cityOpacity.At(f),
	}
	fr.Sections[SectionContact] = Section{
		Opacity: contactOpacity.At(f),
	}

	for i := range fr.Sections {
		fr.Sections[i].Interactive = fr.Sections[i].Opacity > interactiveFloor
	}
	return fr
}
