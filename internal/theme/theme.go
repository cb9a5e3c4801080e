// Package theme holds the light/dark selection as an explicit context
// object passed to the components that render. The choice persists
// across runs in a small yaml file; if none exists yet, the terminal's
// own background is used as the preference signal, defaulting to light.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Mode is the persisted theme flag.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

type fileFormat struct {
	Mode Mode `yaml:"mode"`
}

// Theme is initialized once at startup and threaded through the UI.
// Toggle is the only update path and persists as a side effect.
type Theme struct {
	mode Mode
	path string
}

// DefaultPath returns the theme file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "shoreline", "theme.yml"), nil
}

// Load reads the persisted theme from path. A missing file is not an
// error: the terminal background signal decides, falling back to
// light. A malformed file falls back the same way.
func Load(path string) *Theme {
	t := &Theme{path: path, mode: systemMode()}

	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return t
	}
	if f.Mode == Light || f.Mode == Dark {
		t.mode = f.Mode
	}
	return t
}

// ForceMode sets the mode for this run without persisting, used by the
// -theme flag.
func (t *Theme) ForceMode(m Mode) {
	if m == Light || m == Dark {
		t.mode = m
	}
}

// Mode returns the active theme mode.
func (t *Theme) Mode() Mode { return t.mode }

// Dark reports whether the dark palette is active.
func (t *Theme) Dark() bool { return t.mode == Dark }

// Toggle flips the mode and persists the new choice. The flip always
// succeeds; only the persistence side effect can fail, and the caller
// surfaces that as a transient status line rather than a fatal error.
func (t *Theme) Toggle() error {
	if t.mode == Dark {
		t.mode = Light
	} else {
		t.mode = Dark
	}
	return t.save()
}

func (t *Theme) save() error {
	if t.path == "" {
		return nil
	}
	data, err := yaml.Marshal(fileFormat{Mode: t.mode})
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme: %w", err)
	}
	return nil
}

// systemMode maps the terminal's reported background to a theme mode.
func systemMode() Mode {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}
