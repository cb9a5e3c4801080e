package ui

import (
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lmarchal/shoreline/internal/anim"
)

func testBackground() anim.Background {
	return anim.BackgroundAt(0)
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := newCanvas(10, 4, testBackground())
	fg := hex("#ffffff")

	c.setText(-1, 0, "above", fg, 1, false)
	c.setText(4, 0, "below", fg, 1, false)
	c.setText(1, 8, "overflow", fg, 1, false)

	out := c.render()
	if strings.Contains(out, "above") || strings.Contains(out, "below") {
		t.Fatal("expected out-of-bounds rows to be clipped")
	}
	if strings.Contains(out, "overflow") {
		t.Fatal("expected text past the right edge to be clipped")
	}
	if !strings.Contains(out, "ov") {
		t.Fatal("expected the in-bounds prefix to survive clipping")
	}
}

func TestCanvasSkipsTransparentText(t *testing.T) {
	c := newCanvas(10, 2, testBackground())
	c.setText(0, 0, "ghost", hex("#ffffff"), 0, false)
	if strings.Contains(c.render(), "ghost") {
		t.Fatal("expected fully transparent text to be skipped")
	}
}

func TestCanvasOpacityBlendsTowardRowBackground(t *testing.T) {
	bg := testBackground()
	c := newCanvas(4, 2, bg)
	fg := hex("#ffffff")

	c.setText(0, 0, "a", fg, 1, false)
	full := c.cells[0][0].fg
	c.setText(0, 1, "b", fg, 0.25, false)
	faded := c.cells[0][1].fg

	rowBg := bg.Row(0, 2)
	fullDist := colorDist(full, rowBg)
	fadedDist := colorDist(faded, rowBg)
	if fadedDist >= fullDist {
		t.Fatalf("expected low opacity to sit closer to the background: %v vs %v", fadedDist, fullDist)
	}
}

func TestCanvasRenderHasOneLinePerRow(t *testing.T) {
	c := newCanvas(6, 5, testBackground())
	out := c.render()
	if got := strings.Count(out, "\n"); got != 4 {
		t.Fatalf("expected 4 newlines for 5 rows, got %d", got)
	}
}

func colorDist(a, b colorful.Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}
