package ui

import (
	"strings"

	"github.com/lmarchal/shoreline/internal/anim"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 2 {
		return "\n  shoreline\n"
	}

	sceneRows := m.height - 1
	c := newCanvas(m.width, sceneRows, m.bg)

	m.drawHero(c)
	m.drawWave(c)
	m.drawCity(c)
	m.drawContact(c)

	return c.render() + "\n" + m.chromeLine()
}

// chromeLine is the bottom row: scroll progress on the left, key help
// or a transient status on the right.
func (m Model) chromeLine() string {
	bar := m.progress.ViewAs(m.tracker.Smoothed())

	right := m.help.View(m.keys)
	if m.statusMsg != "" {
		right = m.pal.statusStyle.Render(m.statusMsg)
	}

	left := " " + bar + " "
	gap := m.width - visibleWidth(left) - visibleWidth(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// visibleWidth approximates printable width by ignoring ANSI escape
// sequences.
func visibleWidth(s string) int {
	w := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			w++
		}
	}
	return w
}

// rowFor converts a viewport-height fraction offset into a screen row
// around the given anchor.
func rowFor(anchor int, translate float64, height int) int {
	return anchor + int(translate*float64(height))
}

func (m Model) section(i int) anim.Section {
	return m.frame.Sections[i]
}
