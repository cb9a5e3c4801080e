package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchal/shoreline/internal/anim"
	"github.com/lmarchal/shoreline/internal/content"
	"github.com/lmarchal/shoreline/internal/scene"
	"github.com/lmarchal/shoreline/internal/scroll"
	"github.com/lmarchal/shoreline/internal/theme"
)

// docScreens is the virtual document height in viewport heights. The
// four narrative sections share this travel; the scroll fraction is the
// current offset over the maximum offset.
const docScreens = 5

// lineStep is how many rows a single scroll key moves the target.
const lineStep = 2

// Model is the Bubbletea model for the shoreline TUI.
type Model struct {
	theme   *theme.Theme
	pal     palette
	tracker *scroll.Tracker
	scenes  *scene.Cache

	width  int
	height int
	class  scene.Class

	offset int // target offset in virtual rows
	frame  anim.Frame
	bg     anim.Background

	selected  int // index into content.Projects
	animating bool
	quitting  bool

	statusMsg  string
	statusTime time.Time

	keys     keyMap
	help     help.Model
	progress progress.Model
}

// New creates a Model. The theme and scene cache are initialized once
// at startup and owned by the update loop from then on.
func New(th *theme.Theme, scenes *scene.Cache) Model {
	pal := newPalette(th)
	p := progress.New(
		progress.WithScaledGradient(pal.progressFrom, pal.progressTo),
		progress.WithoutPercentage(),
	)

	m := Model{
		theme:    th,
		pal:      pal,
		tracker:  scroll.NewTracker(scroll.DefaultFPS, 4.5, 1.0),
		scenes:   scenes,
		keys:     newKeyMap(),
		help:     help.New(),
		progress: p,
	}
	m.frame = anim.Visibility(0)
	m.bg = anim.BackgroundAt(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("shoreline — " + content.HeroName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m.scrollBy(lineStep)
		case tea.MouseButtonWheelUp:
			return m.scrollBy(-lineStep)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case frameMsg:
		return m.handleFrame()

	case statusExpiredMsg:
		if m.statusMsg != "" && time.Since(m.statusTime) >= statusLifetime {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Down):
		return m.scrollBy(lineStep)
	case key.Matches(msg, m.keys.Up):
		return m.scrollBy(-lineStep)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.pageStep())
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.pageStep())

	case key.Matches(msg, m.keys.Top):
		m.offset = 0
		m.tracker.Jump(0)
		return m.recompute(), nil
	case key.Matches(msg, m.keys.Bottom):
		m.offset = m.maxOffset()
		m.tracker.Jump(1)
		return m.recompute(), nil

	case key.Matches(msg, m.keys.Next):
		if m.cityInteractive() {
			m.selected = (m.selected + 1) % len(content.Projects)
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.cityInteractive() {
			m.setStatus(content.Projects[m.selected].URL)
			return m, statusExpireCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		var cmd tea.Cmd
		if err := m.theme.Toggle(); err != nil {
			m.setStatus(fmt.Sprintf("theme not saved: %v", err))
			cmd = statusExpireCmd()
		}
		m.pal = newPalette(m.theme)
		m.progress = progress.New(
			progress.WithScaledGradient(m.pal.progressFrom, m.pal.progressTo),
			progress.WithoutPercentage(),
		)
		m.progress.Width = m.progressWidth()
		return m, cmd
	}

	return m, nil
}

// scrollBy moves the scroll target and wakes the frame driver if the
// spring was at rest.
func (m Model) scrollBy(rows int) (Model, tea.Cmd) {
	m.offset += rows
	if m.offset < 0 {
		m.offset = 0
	}
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
	m.tracker.SetTarget(m.fraction())

	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, frameCmd()
}

func (m Model) handleFrame() (Model, tea.Cmd) {
	m.tracker.Step()
	m = m.recompute()
	if m.tracker.Settled() {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	// Preserve the scroll fraction across resizes so the narrative
	// position survives a terminal size change.
	f := m.fraction()
	m.width = msg.Width
	m.height = msg.Height
	m.class = scene.ClassFor(msg.Width)
	m.offset = int(f * float64(m.maxOffset()))
	m.tracker.SetTarget(m.fraction())
	m.progress.Width = m.progressWidth()
	m.help.Width = msg.Width
	return m.recompute()
}

// recompute pulls a fresh parameter frame from the smoothed fraction.
// This is the one place visual state is derived; there is no hidden
// subscription graph.
func (m Model) recompute() Model {
	m.frame = anim.Visibility(m.tracker.Smoothed())
	m.bg = anim.BackgroundAt(m.tracker.Smoothed())
	return m
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now()
}

func (m Model) cityInteractive() bool {
	return m.frame.Sections[anim.SectionCity].Interactive
}

func (m Model) fraction() float64 {
	max := m.maxOffset()
	if max <= 0 {
		return 0
	}
	return float64(m.offset) / float64(max)
}

func (m Model) maxOffset() int {
	if m.height <= 0 {
		return 0
	}
	return (docScreens - 1) * m.height
}

func (m Model) pageStep() int {
	if m.height <= 2 {
		return lineStep
	}
	return m.height - 2
}

func (m Model) progressWidth() int {
	w := m.width - 30
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}
