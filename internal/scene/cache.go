package scene

import "math/rand"

// Class buckets the terminal size the way the original layout buckets
// viewports: narrow terminals get a sparser skyline.
type Class int

const (
	Compact Class = iota
	Wide
)

// wideMinColumns is where the layout switches from Compact to Wide.
const wideMinColumns = 100

// ClassFor returns the viewport class for a terminal width in columns.
func ClassFor(columns int) Class {
	if columns >= wideMinColumns {
		return Wide
	}
	return Compact
}

// Per-class skyline density.
var classParams = map[Class]struct {
	buildings int
	windows   int
}{
	Compact: {buildings: 7, windows: 4},
	Wide:    {buildings: 14, windows: 6},
}

// Cache memoizes one generated skyline per viewport class for the
// session. Regeneration only happens when the class changes; resizes
// within a class reuse the cached slice. Owned by the UI's update loop,
// so no locking.
type Cache struct {
	rng      *rand.Rand
	skylines map[Class][]Building
}

// NewCache returns a cache drawing from rng. A nil rng keeps the
// default unseeded behavior of Generate.
func NewCache(rng *rand.Rand) *Cache {
	return &Cache{
		rng:      rng,
		skylines: make(map[Class][]Building),
	}
}

// Skyline returns the memoized skyline for the given class, generating
// it on first use.
func (c *Cache) Skyline(class Class) []Building {
	if b, ok := c.skylines[class]; ok {
		return b
	}
	p := classParams[class]
	b := Generate(p.buildings, p.windows, c.rng)
	c.skylines[class] = b
	return b
}
