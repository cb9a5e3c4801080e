package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchal/shoreline/internal/scene"
	"github.com/lmarchal/shoreline/internal/theme"
	"github.com/lmarchal/shoreline/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "skyline seed (0 means a fresh skyline per run)")
	forced := flag.String("theme", "", "force theme for this run: light or dark")
	flag.Parse()

	themePath, err := theme.DefaultPath()
	if err != nil {
		// No config dir just means the choice won't persist.
		themePath = ""
	}
	th := theme.Load(themePath)
	switch *forced {
	case "":
	case "light":
		th.ForceMode(theme.Light)
	case "dark":
		th.ForceMode(theme.Dark)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q (want light or dark)\n", *forced)
		os.Exit(1)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	scenes := scene.NewCache(rng)

	model := ui.New(th, scenes)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
