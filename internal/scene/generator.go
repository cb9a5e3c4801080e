// Package scene generates the decorative city skyline: pseudo-random
// building heights, lit or dark windows, and rooftop antennas.
package scene

import (
	"math/rand"
	"time"
)

// Height bounds as a percentage of the usable skyline height.
const (
	MinHeightPct = 20
	MaxHeightPct = 80
)

// Feature probabilities.
const (
	litProbability     = 0.2
	antennaProbability = 0.4
)

// Window is a single window cell on a building face.
type Window struct {
	Lit     bool
	Opacity float64
}

// Building is one generated skyline tower. Immutable after generation.
type Building struct {
	ID         int
	HeightPct  float64
	Windows    []Window
	HasAntenna bool
}

// Generate produces buildingCount buildings with windowsPerBuilding
// windows each. A nil rng means a fresh time-seeded source, so every
// launch gets its own skyline; tests inject a fixed seed for
// reproducibility.
func Generate(buildingCount, windowsPerBuilding int, rng *rand.Rand) []Building {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	buildings := make([]Building, 0, buildingCount)
	for i := 0; i < buildingCount; i++ {
		b := Building{
			ID:        i,
			HeightPct: MinHeightPct + rng.Float64()*(MaxHeightPct-MinHeightPct),
			Windows:   make([]Window, 0, windowsPerBuilding),
		}
		for w := 0; w < windowsPerBuilding; w++ {
			b.Windows = append(b.Windows, Window{
				Lit:     rng.Float64() > 1-litProbability,
				Opacity: rng.Float64(),
			})
		}
		b.HasAntenna = rng.Float64() > 1-antennaProbability
		buildings = append(buildings, b)
	}
	return buildings
}
