package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func themeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yml")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestLoadReadsPersistedMode(t *testing.T) {
	path := themeFile(t, "mode: dark\n")
	th := Load(path)
	if th.Mode() != Dark {
		t.Fatalf("expected dark, got %v", th.Mode())
	}

	path = themeFile(t, "mode: light\n")
	th = Load(path)
	if th.Mode() != Light {
		t.Fatalf("expected light, got %v", th.Mode())
	}
}

func TestLoadIgnoresUnknownMode(t *testing.T) {
	path := themeFile(t, "mode: solarized\n")
	th := Load(path)
	if th.Mode() != Light && th.Mode() != Dark {
		t.Fatalf("expected fallback to a valid mode, got %v", th.Mode())
	}
}

func TestLoadSurvivesMalformedFile(t *testing.T) {
	path := themeFile(t, "{not yaml::\n")
	th := Load(path)
	if th.Mode() != Light && th.Mode() != Dark {
		t.Fatalf("expected fallback to a valid mode, got %v", th.Mode())
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	path := themeFile(t, "mode: light\n")
	th := Load(path)

	if err := th.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if th.Mode() != Dark {
		t.Fatalf("expected dark after toggle, got %v", th.Mode())
	}

	reloaded := Load(path)
	if reloaded.Mode() != Dark {
		t.Fatalf("expected persisted dark, got %v", reloaded.Mode())
	}

	if err := th.Toggle(); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if got := Load(path).Mode(); got != Light {
		t.Fatalf("expected persisted light, got %v", got)
	}
}

func TestToggleCreatesMissingConfigDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shoreline", "theme.yml")
	th := Load(path)

	if err := th.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected theme file to be created: %v", err)
	}
}

func TestForceModeDoesNotPersist(t *testing.T) {
	path := themeFile(t, "mode: light\n")
	th := Load(path)

	th.ForceMode(Dark)
	if th.Mode() != Dark {
		t.Fatalf("expected forced dark, got %v", th.Mode())
	}
	if got := Load(path).Mode(); got != Light {
		t.Fatalf("expected file untouched by ForceMode, got %v", got)
	}

	th.ForceMode("neon")
	if th.Mode() != Dark {
		t.Fatalf("expected invalid force to be ignored, got %v", th.Mode())
	}
}
