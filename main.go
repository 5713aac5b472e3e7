package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"hnreader/config"
	"hnreader/hackernews"
	"hnreader/state"
	"hnreader/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hnreader: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "hnreader")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := hackernews.NewClient(cfg.APIURL, &http.Client{})
	selection := state.NewSelection()
	selection.Subscribe(func(id int, ok bool) {
		if ok {
			log.Printf("Selected item %d", id)
		} else {
			log.Printf("Selection cleared")
		}
	})

	log.Printf("Starting reader against %s (top %d)", cfg.APIURL, cfg.TopStoriesLimit)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.NewModel(client, selection, cfg.TopStoriesLimit), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("reader exited: %w", err)
	}
	return nil
}
