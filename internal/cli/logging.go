package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"searchlist/internal/config"
	"searchlist/internal/eventbus"
)

// setupLogging points the global zerolog logger at the configured file.
// Stdout belongs to the TUI so nothing is logged to the console. The
// returned closer must be called on exit.
func setupLogging(cfg config.LogSettings, debug bool, stderr io.Writer) func() {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	if cfg.File == "" {
		log.Logger = zerolog.Nop()
		return func() {}
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(stderr, "Could not create log directory: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		log.Logger = zerolog.Nop()
		return func() {}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(logFile).Level(level).With().Timestamp().Logger()

	return func() {
		log.Logger = zerolog.Nop()
		_ = logFile.Close()
	}
}

// logEvents records every domain event in the log. Returns a function
// that removes the subscriptions.
func logEvents(bus eventbus.EventBus) func() {
	var unsubs []func()

	unsubs = append(unsubs, bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AppReadyEvent); ok {
			log.Info().Int("items", event.ItemCount).Msg("list ready")
		}
	}))
	unsubs = append(unsubs, bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchChangedEvent); ok {
			log.Debug().Str("term", event.Term).Int("matches", event.MatchCount).Msg("search changed")
		}
	}))
	unsubs = append(unsubs, bus.Subscribe(eventbus.EventSearchCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchClearedEvent); ok {
			log.Debug().Int("matches", event.MatchCount).Msg("search cleared")
		}
	}))
	unsubs = append(unsubs, bus.Subscribe(eventbus.EventSelectionToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionToggledEvent); ok {
			log.Info().
				Int("id", event.Item.ID).
				Str("name", event.Item.Name).
				Bool("selected", event.Selected).
				Int("total", event.Total).
				Msg("selection toggled")
		}
	}))

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
