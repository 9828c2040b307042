package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/myca/taxgo/internal/rules"
	"github.com/myca/taxgo/internal/tui"
)

func main() {
	// Optional rules file argument; built-in tables otherwise.
	var registry *rules.Registry
	var err error
	if len(os.Args) > 1 {
		registry, err = rules.NewRegistryFromFile(os.Args[1])
	} else {
		registry, err = rules.NewRegistry()
	}
	if err != nil {
		fmt.Printf("Error loading rule tables: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(registry)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
