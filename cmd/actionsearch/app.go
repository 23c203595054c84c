package main

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/urfave/cli/v2"

	"actionsearch/internal/config"
	"actionsearch/internal/domain"
	"actionsearch/internal/eventbus"
	"actionsearch/internal/history"
	"actionsearch/internal/registry"
	"actionsearch/internal/search"
)

// app holds the collaborators shared by every command
type app struct {
	bus       eventbus.EventBus
	configSvc config.ConfigService
	cfg       *config.Config
	registry  *registry.Registry
	history   *history.History

	mu      sync.Mutex
	notices []string
}

func setup(c *cli.Context) (*app, error) {
	bus := eventbus.New()

	var configSvc config.ConfigService
	if path := c.String("config"); path != "" {
		configSvc = config.NewConfigServiceAt(path)
	} else {
		configSvc = config.NewConfigService()
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	reg := registry.NewDefault()
	reg.SetCallback(func(a *domain.Action) {
		log.Printf("Action: %s activated", a.Name)
	})

	store, err := openHistoryStore(cfg.History)
	if err != nil {
		eventbus.Close(bus)
		return nil, err
	}

	a := &app{
		bus:       bus,
		configSvc: configSvc,
		cfg:       cfg,
		registry:  reg,
		history:   history.New(store, reg),
	}
	a.history.Subscribe(bus)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			a.notice("warning: %s: %v", ev.Message, ev.Err)
		}
	})
	return a, nil
}

// notice queues a line for the user; close prints the queue once the bus
// has drained.
func (a *app) notice(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notices = append(a.notices, fmt.Sprintf(format, args...))
}

// loadCatalog adds the configured YAML actions. A broken catalog leaves
// the built-in actions searchable and is reported on the bus.
func (a *app) loadCatalog() {
	if a.cfg.Catalog.Path == "" {
		return
	}
	if err := a.registry.LoadCatalog(a.cfg.Catalog.Path); err != nil {
		log.Printf("Failed to load action catalog: %v", err)
		a.bus.Publish(eventbus.ErrorEvent{Message: "Failed to load action catalog", Err: err})
	}
}

func openHistoryStore(settings config.HistorySettings) (history.Store, error) {
	if settings.Path == "" {
		return history.NewMemoryStore(settings.Size), nil
	}
	store, err := history.OpenBadgerStore(settings.Path, settings.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

func (a *app) newSession() *search.Session {
	aggregator := search.NewAggregator(a.registry, a.history, func() bool {
		return a.cfg.Search.ShowUnavailable
	})
	return search.NewSession(aggregator, a.bus)
}

// close drains the bus before closing history so queued activations are
// recorded.
func (a *app) close(w io.Writer) {
	eventbus.Close(a.bus)
	if err := a.history.Close(); err != nil {
		log.Printf("Failed to close history: %v", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, n := range a.notices {
		fmt.Fprintln(w, n)
	}
}
