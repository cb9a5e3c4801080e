package ui

import (
	"strings"

	"github.com/lmarchal/shoreline/internal/anim"
	"github.com/lmarchal/shoreline/internal/content"
)

// drawHero paints the opening beach scene: name and tagline over sand
// and surf. TranslateY slides the whole block up as the reader scrolls
// away.
func (m Model) drawHero(c *canvas) {
	s := m.section(anim.SectionHero)
	if s.Opacity <= 0 {
		return
	}

	center := rowFor(c.h/2-2, s.TranslateY, c.h)

	c.setText(rowFor(2, s.TranslateY, c.h), c.w-8, "\\ | /", m.pal.accent, s.Opacity, false)
	c.setText(rowFor(3, s.TranslateY, c.h), c.w-9, "-- O --", m.pal.accent, s.Opacity, false)
	c.setText(rowFor(4, s.TranslateY, c.h), c.w-8, "/ | \\", m.pal.accent, s.Opacity, false)

	c.centered(center, content.HeroName, m.pal.text, s.Opacity, true)
	c.centered(center+2, content.HeroTagline, m.pal.subtle, s.Opacity, false)
	c.centered(center+5, content.HeroHint+" ↓", m.pal.subtle, s.Opacity*0.8, false)

	// Shoreline surf along the bottom of the scene.
	surf := strings.Repeat("~", c.w)
	c.setText(rowFor(c.h-3, s.TranslateY, c.h), 0, surf, m.pal.foam, s.Opacity*0.7, false)
	c.setText(rowFor(c.h-2, s.TranslateY, c.h), 0, surf, m.pal.foam, s.Opacity*0.4, false)
}

// drawWave paints the crossing wave band. Its vertical position comes
// from the wave track (one viewport below, a hold at center, then off
// the top); the interlude text fades on its own curve.
func (m Model) drawWave(c *canvas) {
	s := m.section(anim.SectionWave)
	bandTop := rowFor(c.h/2-3, s.TranslateY, c.h)
	if bandTop > c.h || bandTop+6 < 0 {
		return
	}

	crest := strings.Repeat("∿", c.w)
	body := strings.Repeat("≈", c.w)
	c.setText(bandTop, 0, crest, m.pal.foam, 0.9, false)
	c.setText(bandTop+1, 0, body, m.pal.foam, 0.7, false)
	c.setText(bandTop+5, 0, body, m.pal.foam, 0.7, false)
	c.setText(bandTop+6, 0, crest, m.pal.foam, 0.9, false)

	for i, line := range content.WaveLines {
		c.centered(bandTop+2+i, line, m.pal.text, s.Opacity, i == 0)
	}
}

// drawCity paints the skyline section: generated buildings anchored to
// the bottom, project cards above them. Cards respond to input only
// while the section is interactive.
func (m Model) drawCity(c *canvas) {
	s := m.section(anim.SectionCity)
	if s.Opacity <= 0 {
		return
	}

	c.setText(2, c.w-7, "☾", m.pal.litWin, s.Opacity, false)
	c.centered(1, content.CityTitle, m.pal.text, s.Opacity, true)

	m.drawSkyline(c, s.Opacity)

	row := 3
	for i, p := range content.Projects {
		label := p.Name + " — " + p.Tagline
		fg := m.pal.subtle
		if s.Interactive && i == m.selected {
			label = "» " + label
			fg = m.pal.accent
		}
		c.centered(row, label, fg, s.Opacity, false)
		row += 2
	}
}

// drawSkyline paints the memoized buildings for the current viewport
// class.
func (m Model) drawSkyline(c *canvas, opacity float64) {
	buildings := m.scenes.Skyline(m.class)
	if len(buildings) == 0 {
		return
	}

	slot := c.w / len(buildings)
	if slot < 2 {
		slot = 2
	}
	maxRows := c.h - 4

	for _, b := range buildings {
		rows := int(b.HeightPct / 100 * float64(maxRows))
		if rows < 1 {
			rows = 1
		}
		left := b.ID * slot
		width := slot - 1
		if width < 1 {
			width = 1
		}
		top := c.h - rows

		for row := top; row < c.h; row++ {
			for col := left; col < left+width && col < c.w; col++ {
				c.setRune(row, col, '█', m.pal.tower, opacity)
			}
		}

		// Windows fill column-major down the face.
		for wi, win := range b.Windows {
			row := top + 1 + wi/width
			col := left + wi%width
			if row >= c.h-1 || col >= c.w {
				break
			}
			if win.Lit {
				c.setRune(row, col, '▪', m.pal.litWin, opacity*win.Opacity)
			} else {
				c.setRune(row, col, '▪', m.pal.darkWin, opacity)
			}
		}

		if b.HasAntenna && top-1 >= 0 {
			c.setRune(top-1, left+width/2, '╵', m.pal.tower, opacity)
		}
	}
}

// drawContact paints the closing section.
func (m Model) drawContact(c *canvas) {
	s := m.section(anim.SectionContact)
	if s.Opacity <= 0 {
		return
	}

	center := c.h / 2
	c.centered(center-2, content.ContactTitle, m.pal.text, s.Opacity, true)
	for i, l := range content.ContactLinks {
		c.centered(center+i, l.Label+"  "+l.URL, m.pal.subtle, s.Opacity, false)
	}
	c.centered(c.h-2, "g top · q quit", m.pal.subtle, s.Opacity*0.7, false)
}
