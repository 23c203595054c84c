package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"actionsearch/internal/domain"
	"actionsearch/internal/eventbus"
	"actionsearch/internal/language"
	"actionsearch/internal/search"
	"actionsearch/internal/ui"
)

func paletteCommand(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close(c.App.ErrWriter)

	session := a.newSession()
	model := ui.NewModel(a.bus, a.cfg, session)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// Surface errors and ignored activations in the status line
	unsubscribe := ui.ForwardEvents(a.bus, p.Send)
	defer unsubscribe()

	var configChanged atomic.Bool
	a.bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigChangedEvent); ok {
			log.Printf("Config changed: %s", ev.Reason)
		}
		configChanged.Store(true)
	})

	a.loadCatalog()

	log.Printf("Starting UI...")
	_, err = p.Run()
	// deliver what the dialog published before reading the results
	eventbus.Close(a.bus)
	if err != nil {
		return fmt.Errorf("failed to run search dialog: %w", err)
	}
	log.Printf("UI exited in phase %s", session.Phase())

	if configChanged.Load() {
		if err := a.configSvc.Save(a.cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", a.configSvc.Path())
		}
	}

	if session.Phase() == search.PhaseActivated {
		fmt.Fprintf(c.App.Writer, "Ran %s\n", session.Current().Label)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	var keyword *string
	if !c.Bool("all") {
		if c.NArg() == 0 {
			return fmt.Errorf("a keyword is required unless --all is given")
		}
		k := strings.Join(c.Args().Slice(), " ")
		keyword = &k
	}

	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close(c.App.ErrWriter)
	a.loadCatalog()

	if c.Bool("show-unavailable") {
		a.cfg.Search.ShowUnavailable = true
	}

	session := a.newSession()
	if keyword == nil {
		session.ShowAll()
	} else {
		session.SetKeyword(*keyword)
	}

	printEntries(c, session.Results())

	if c.Bool("run") {
		if session.Current() == nil {
			return fmt.Errorf("no action matches %q", session.Keyword())
		}
		if !session.Confirm() {
			return fmt.Errorf("%s cannot run right now", session.Current().Action.Name)
		}
		fmt.Fprintf(c.App.Writer, "Ran %s\n", session.Current().Label)
	}
	return nil
}

func printEntries(c *cli.Context, entries []search.Entry) {
	sectionColor := color.New(color.FgCyan).SprintFunc()
	labelColor := color.New(color.Bold).SprintFunc()
	shortcutColor := color.New(color.FgYellow).SprintFunc()
	dimColor := color.New(color.Faint).SprintFunc()

	if len(entries) == 0 {
		fmt.Fprintln(c.App.Writer, dimColor("No matching actions"))
		return
	}

	for _, e := range entries {
		label := labelColor(e.Label)
		if !e.Sensitive {
			label = dimColor(e.Label + " (unavailable)")
		}
		line := fmt.Sprintf("%s %s", sectionColor(e.Section), label)
		if e.Shortcut != "" {
			line += " | " + shortcutColor(e.Shortcut)
		}
		fmt.Fprintf(c.App.Writer, "%s  %s\n", line, dimColor(e.Action.Name))
		if e.Tooltip != "" {
			fmt.Fprintf(c.App.Writer, "    %s\n", dimColor(e.Tooltip))
		}
	}
}

func languagesCommand(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close(c.App.ErrWriter)

	a.bus.Subscribe(eventbus.EventLanguagesLoaded, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.LanguagesLoadedEvent)
		switch {
		case !ok:
		case ev.Path == "":
			a.notice("No ISO-639 data found, the language list is empty")
		default:
			a.notice("Loaded %d languages from %s", ev.Count, ev.Path)
		}
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	dir := a.cfg.Languages.ISOCodesDir
	if c.IsSet("iso-codes-dir") {
		dir = c.String("iso-codes-dir")
	}

	translator, err := a.translator()
	if err != nil {
		return err
	}

	store := language.NewMemoryStore()
	err = language.ParseISOCodes(ctx, store, language.Options{
		Dir:        dir,
		DataDir:    dataDir(),
		Translator: translator,
		Variants:   language.VariantsFromCodes(a.cfg.Languages.Variants),
		Bus:        a.bus,
	})
	if err != nil {
		return fmt.Errorf("failed to load languages: %w", err)
	}

	langs := store.Languages()
	if c.Bool("sorted") {
		langs = store.Sorted(a.cfg.Languages.Ambient)
	}

	content := formatLanguages(langs)
	if c.Bool("pager") {
		return ui.ShowInPager(content)
	}
	_, err = fmt.Fprint(c.App.Writer, content)
	return err
}

// translator prefers the configured name catalog over the CLDR names
func (a *app) translator() (language.Translator, error) {
	display := language.NewDisplayTranslator(a.cfg.Languages.Ambient)
	if a.cfg.Languages.Translations == "" {
		return display, nil
	}
	catalog, err := language.LoadCatalogTranslator(a.cfg.Languages.Translations, a.cfg.Languages.Ambient)
	if err != nil {
		return nil, err
	}
	return language.Translators{catalog, display}, nil
}

func formatLanguages(langs []domain.Language) string {
	var b strings.Builder
	for _, l := range langs {
		fmt.Fprintf(&b, "%-8s %s\n", l.Code, l.Name)
	}
	return b.String()
}

// dataDir is the application data directory next to the executable,
// used to find bundled iso-codes on Windows.
func dataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "..", "share", "actionsearch")
}
