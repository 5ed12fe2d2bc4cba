package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"yeardots/internal/app"
	"yeardots/internal/config"
	"yeardots/internal/debug"
	"yeardots/internal/settings"
)

func main() {
	if err := debug.EnableFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
	}
	defer debug.Close()

	// On first run, write a commented default config for the user to edit
	if config.IsFirstRun() {
		if err := config.CreateDefaultConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	// Load persisted settings; a corrupt state file is fatal
	store := settings.NewStore(settings.StatePath())
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// Create and run the application
	model := app.New(cfg, store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
