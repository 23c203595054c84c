package language

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"actionsearch/internal/eventbus"
)

// DataFile is the name of the iso-codes ISO-639 file
const DataFile = "iso_639.xml"

// LocationEnv overrides the directory holding DataFile
const LocationEnv = "ISO_CODES_LOCATION"

var errNoData = errors.New("no ISO-639 data file found")

// systemDirs are the iso-codes install locations on Unix systems
var systemDirs = []string{"/usr/share/xml/iso-codes", "/usr/local/share/xml/iso-codes"}

// Options configures ParseISOCodes
type Options struct {
	// Dir is searched before every other location when set
	Dir string
	// DataDir is the application data directory; on Windows the iso-codes
	// files are installed relative to it.
	DataDir    string
	Translator Translator
	// Variants replaces the default regional variant table when set
	Variants map[string]Variant
	Bus      eventbus.EventBus
}

// SearchPath returns the directories searched for DataFile, in order
func SearchPath(opts Options) []string {
	var dirs []string
	if opts.Dir != "" {
		dirs = append(dirs, opts.Dir)
	}
	if env := os.Getenv(LocationEnv); env != "" {
		dirs = append(dirs, env)
	}
	if runtime.GOOS == "windows" {
		if opts.DataDir != "" {
			dirs = append(dirs, filepath.Join(opts.DataDir, "..", "..", "xml", "iso-codes"))
		}
		return dirs
	}
	return append(dirs, systemDirs...)
}

func findDataFile(dirs []string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, DataFile)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			return path, nil
		}
	}
	return "", errNoData
}

// ParseISOCodes fills store from the first ISO-639 data file found on the
// search path. A missing data file is not an error: the store stays empty.
func ParseISOCodes(ctx context.Context, store Store, opts Options) error {
	path, err := findDataFile(SearchPath(opts))
	if errors.Is(err, errNoData) {
		log.Printf("Language: %v, language list is empty", err)
		publish(opts.Bus, eventbus.LanguagesLoadedEvent{})
		return nil
	}
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p := NewParser(store, opts.Translator)
	if opts.Variants != nil {
		p.SetVariants(opts.Variants)
	}
	if err := p.Parse(ctx, f); err != nil {
		publish(opts.Bus, eventbus.ErrorEvent{Message: "Failed to load languages", Err: err})
		return fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Language: loaded %d languages from %s", p.Added(), path)
	publish(opts.Bus, eventbus.LanguagesLoadedEvent{Count: p.Added(), Path: path})
	return nil
}

func publish(bus eventbus.EventBus, event eventbus.DomainEvent) {
	if bus != nil {
		bus.Publish(event)
	}
}
