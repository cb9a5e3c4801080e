// Package content holds the static narrative copy for each section.
package content

// Link is a labelled contact destination.
type Link struct {
	Label string
	URL   string
}

// Project is one card in the interactive city section.
type Project struct {
	Name    string
	Tagline string
	URL     string
}

// Hero: the opening beach scene.
const (
	HeroName    = "Léa Marchal"
	HeroTagline = "software engineer · systems & interfaces"
	HeroHint    = "scroll to dive in"
)

// WaveLines shows while the wave crosses the screen.
var WaveLines = []string{
	"the tide carries you",
	"from the shore to the city",
}

// CityTitle heads the skyline section.
const CityTitle = "things I've built"

// Projects listed over the skyline.
var Projects = []Project{
	{Name: "driftwood", Tagline: "an append-only log shipper", URL: "https://github.com/lmarchal/driftwood"},
	{Name: "brackish", Tagline: "terminal dashboards from plain yaml", URL: "https://github.com/lmarchal/brackish"},
	{Name: "moonjelly", Tagline: "soft-realtime sensor fusion", URL: "https://github.com/lmarchal/moonjelly"},
	{Name: "saltline", Tagline: "a tiny ANSI diffing renderer", URL: "https://github.com/lmarchal/saltline"},
}

// Contact: the closing section.
const ContactTitle = "say hello"

var ContactLinks = []Link{
	{Label: "email", URL: "mailto:lea@lmarchal.dev"},
	{Label: "github", URL: "https://github.com/lmarchal"},
	{Label: "mastodon", URL: "https://hachyderm.io/@lmarchal"},
}
