package ui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchal/shoreline/internal/anim"
	"github.com/lmarchal/shoreline/internal/scene"
	"github.com/lmarchal/shoreline/internal/theme"
)

func testModel(t *testing.T) Model {
	t.Helper()
	th := theme.Load(filepath.Join(t.TempDir(), "theme.yml"))
	th.ForceMode(theme.Dark)
	m := New(th, scene.NewCache(rand.New(rand.NewSource(1))))
	return m.handleResize(tea.WindowSizeMsg{Width: 120, Height: 40})
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResizeSetsViewportClass(t *testing.T) {
	m := testModel(t)
	if m.class != scene.Wide {
		t.Fatalf("expected Wide class at 120 columns, got %v", m.class)
	}

	m = m.handleResize(tea.WindowSizeMsg{Width: 70, Height: 24})
	if m.class != scene.Compact {
		t.Fatalf("expected Compact class at 70 columns, got %v", m.class)
	}
}

func TestResizePreservesScrollFraction(t *testing.T) {
	m := testModel(t)
	m.offset = m.maxOffset() / 2
	m.tracker.Jump(m.fraction())

	m = m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 20})
	if got := m.fraction(); got < 0.49 || got > 0.51 {
		t.Fatalf("expected fraction preserved across resize, got %v", got)
	}
}

func TestScrollStartsFrameDriverOnce(t *testing.T) {
	m := testModel(t)

	next, cmd := m.handleKey(keyRunes('j'))
	if cmd == nil {
		t.Fatal("expected frame command on first scroll")
	}
	if !next.animating {
		t.Fatal("expected animating state after scroll")
	}

	_, cmd = next.handleKey(keyRunes('j'))
	if cmd != nil {
		t.Fatal("expected no duplicate frame command while animating")
	}
}

func TestFrameDriverStopsWhenSettled(t *testing.T) {
	m := testModel(t)
	m, cmd := m.handleKey(keyRunes('j'))
	if cmd == nil {
		t.Fatal("expected frame command")
	}

	for i := 0; i < 600; i++ {
		m, cmd = m.handleFrame()
		if cmd == nil {
			break
		}
	}
	if cmd != nil {
		t.Fatal("expected frame driver to stop at rest")
	}
	if m.animating {
		t.Fatal("expected animating cleared at rest")
	}
	if !m.tracker.Settled() {
		t.Fatal("expected spring settled when driver stops")
	}
}

func TestBottomJumpShowsContact(t *testing.T) {
	m := testModel(t)
	m, cmd := m.handleKey(keyRunes('G'))
	if cmd != nil {
		t.Fatal("expected no frame command for an instant jump")
	}
	if got := m.frame.Sections[anim.SectionContact].Opacity; got != 1 {
		t.Fatalf("expected contact fully visible at bottom, got %v", got)
	}
	if got := m.frame.Sections[anim.SectionHero].Opacity; got != 0 {
		t.Fatalf("expected hero hidden at bottom, got %v", got)
	}
}

func TestProjectSelectionOnlyWhenInteractive(t *testing.T) {
	m := testModel(t)

	// At the top the city section is hidden, so tab is inert.
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if next.selected != 0 {
		t.Fatalf("expected selection unchanged while city hidden, got %d", next.selected)
	}

	// Halfway down the city section is interactive.
	m.offset = m.maxOffset() / 2
	m.tracker.Jump(m.fraction())
	m = m.recompute()
	if !m.cityInteractive() {
		t.Fatal("expected city interactive at mid scroll")
	}
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if next.selected != 1 {
		t.Fatalf("expected selection to advance, got %d", next.selected)
	}
}

func TestThemeToggleSwapsPalette(t *testing.T) {
	m := testModel(t)
	before := m.pal.text

	next, _ := m.handleKey(keyRunes('t'))
	if next.theme.Mode() != theme.Light {
		t.Fatalf("expected light after toggle, got %v", next.theme.Mode())
	}
	if next.pal.text == before {
		t.Fatal("expected palette to change with theme")
	}
}

func TestViewRendersHeroAtTop(t *testing.T) {
	m := testModel(t)
	view := m.View()
	if !strings.Contains(view, "Léa Marchal") {
		t.Fatal("expected hero name in top-of-page view")
	}
}

func TestViewAfterQuitIsEmpty(t *testing.T) {
	m := testModel(t)
	m.quitting = true
	if got := m.View(); got != "" {
		t.Fatalf("expected empty view while quitting, got %q", got)
	}
}

func TestWheelScrollMovesTarget(t *testing.T) {
	m := testModel(t)
	model, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	next := model.(Model)
	if next.offset != lineStep {
		t.Fatalf("expected wheel to advance offset by %d, got %d", lineStep, next.offset)
	}
}
