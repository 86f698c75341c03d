package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/radix-cli/radix/internal/config"
	"github.com/radix-cli/radix/internal/session"
	"github.com/radix-cli/radix/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	in, out, err := cfg.Bases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	debug := cfg.Debug || os.Getenv("RADIX_DEBUG") != ""

	p := tea.NewProgram(
		tui.NewRootModel(session.NewWithBases(in, out), debug),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
