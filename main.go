package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/mfranzen/caliper/internal/config"
	"github.com/mfranzen/caliper/internal/history"
	"github.com/mfranzen/caliper/internal/logging"
	"github.com/mfranzen/caliper/internal/tui"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("logging unavailable: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// History is optional: the picker works without persistence.
	store, err := history.Open(context.Background())
	if err != nil {
		slog.Error("opening history store failed", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	model, err := tui.NewModel(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize picker: %v", err)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
