package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lmarchal/shoreline/internal/anim"
)

// canvas is a per-frame cell buffer. Each row carries a background
// color from the scene gradient; text is drawn with a foreground
// blended toward that background by the section's opacity, which is how
// opacity reads on a character grid.
type canvas struct {
	w, h  int
	cells [][]cell
	bg    []colorful.Color
}

type cell struct {
	r    rune
	fg   colorful.Color
	set  bool
	bold bool
}

func newCanvas(w, h int, bg anim.Background) *canvas {
	c := &canvas{w: w, h: h}
	c.cells = make([][]cell, h)
	c.bg = make([]colorful.Color, h)
	for row := 0; row < h; row++ {
		c.cells[row] = make([]cell, w)
		c.bg[row] = bg.Row(row, h)
	}
	return c
}

// setText draws s at (row, col) with the given foreground, faded toward
// the row background by opacity. Fully transparent text is skipped;
// out-of-bounds cells are clipped.
func (c *canvas) setText(row, col int, s string, fg colorful.Color, opacity float64, bold bool) {
	if opacity <= 0 || row < 0 || row >= c.h {
		return
	}
	blended := c.bg[row].BlendRgb(fg, anim.Clamp01(opacity))
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= c.w {
			continue
		}
		if r == ' ' {
			continue
		}
		c.cells[row][x] = cell{r: r, fg: blended, set: true, bold: bold}
	}
}

// setRune fills a single cell, used by the skyline painter.
func (c *canvas) setRune(row, col int, r rune, fg colorful.Color, opacity float64) {
	if opacity <= 0 || row < 0 || row >= c.h || col < 0 || col >= c.w {
		return
	}
	blended := c.bg[row].BlendRgb(fg, anim.Clamp01(opacity))
	c.cells[row][col] = cell{r: r, fg: blended, set: true}
}

// centered draws s horizontally centered on row.
func (c *canvas) centered(row int, s string, fg colorful.Color, opacity float64, bold bool) {
	c.setText(row, (c.w-len([]rune(s)))/2, s, fg, opacity, bold)
}

// render flattens the buffer to a styled string, one lipgloss render
// per run of identically styled cells.
func (c *canvas) render() string {
	var b strings.Builder
	for row := 0; row < c.h; row++ {
		bgColor := lipgloss.Color(c.bg[row].Hex())
		i := 0
		for i < c.w {
			j := i
			first := c.cells[row][i]
			for j < c.w && sameStyle(c.cells[row][j], first) {
				j++
			}
			style := lipgloss.NewStyle().Background(bgColor)
			if first.set {
				style = style.Foreground(lipgloss.Color(first.fg.Hex())).Bold(first.bold)
			}
			var run strings.Builder
			for k := i; k < j; k++ {
				r := c.cells[row][k].r
				if !c.cells[row][k].set || r == 0 {
					r = ' '
				}
				run.WriteRune(r)
			}
			b.WriteString(style.Render(run.String()))
			i = j
		}
		if row < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	if a.set != b.set {
		return false
	}
	if !a.set {
		return true
	}
	return a.fg == b.fg && a.bold == b.bold
}
