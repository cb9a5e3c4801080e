package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lmarchal/shoreline/internal/theme"
)

// palette is the per-theme color set for text drawn over the scene
// gradient plus the chrome styles on the bottom line.
type palette struct {
	text    colorful.Color
	subtle  colorful.Color
	accent  colorful.Color
	foam    colorful.Color
	tower   colorful.Color
	litWin  colorful.Color
	darkWin colorful.Color

	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style

	progressFrom string
	progressTo   string
}

func newPalette(t *theme.Theme) palette {
	if t.Dark() {
		return palette{
			text:    hex("#f0ede4"),
			subtle:  hex("#b8b2a5"),
			accent:  hex("#ffb454"),
			foam:    hex("#d8f4ff"),
			tower:   hex("#3a3554"),
			litWin:  hex("#ffd98a"),
			darkWin: hex("#252138"),

			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")),
			helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),

			progressFrom: "#FF8C00",
			progressTo:   "#FF5F1F",
		}
	}
	return palette{
		text:    hex("#2b2620"),
		subtle:  hex("#59524a"),
		accent:  hex("#c2571a"),
		foam:    hex("#ffffff"),
		tower:   hex("#474060"),
		litWin:  hex("#ffcf5e"),
		darkWin: hex("#2e2945"),

		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
		helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),

		progressFrom: "#FF8C00",
		progressTo:   "#FF5F1F",
	}
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("ui: bad hex color " + s)
	}
	return c
}
