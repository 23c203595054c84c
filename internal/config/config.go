package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ACTIONSEARCH_SEARCH_SHOW_UNAVAILABLE.
const EnvPrefix = "ACTIONSEARCH"

// Config represents the application configuration
type Config struct {
	Version   int              `toml:"version" mapstructure:"version"`
	Search    SearchSettings   `toml:"search" mapstructure:"search"`
	History   HistorySettings  `toml:"history" mapstructure:"history"`
	Languages LanguageSettings `toml:"languages" mapstructure:"languages"`
	Catalog   CatalogSettings  `toml:"catalog" mapstructure:"catalog"`
}

// SearchSettings configures the action search dialog
type SearchSettings struct {
	ShowUnavailable bool           `toml:"show_unavailable" mapstructure:"show_unavailable"`
	Dialog          DialogGeometry `toml:"dialog" mapstructure:"dialog"`
}

// HistorySettings configures the recent-usage history
type HistorySettings struct {
	Path string `toml:"path" mapstructure:"path"` // badger directory, "" keeps history in memory
	Size int    `toml:"size" mapstructure:"size"`
}

// LanguageSettings configures the ISO-639 language store
type LanguageSettings struct {
	ISOCodesDir  string `toml:"iso_codes_dir" mapstructure:"iso_codes_dir"`
	Ambient      string `toml:"ambient" mapstructure:"ambient"`           // fallback UI locale
	Translations string `toml:"translations" mapstructure:"translations"` // optional YAML name catalog
	// Variants lists base codes offered once per region instead
	Variants map[string][]string `toml:"variants" mapstructure:"variants"`
}

// CatalogSettings points at an optional YAML action catalog
type CatalogSettings struct {
	Path string `toml:"path" mapstructure:"path"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "actionsearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist. Environment overrides apply in both cases.
func (cs *configService) Load() (*Config, error) {
	return read(cs.filePath, false)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func read(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	} else if mustExist {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// a configured variant table replaces the default one
	if !v.IsSet("languages.variants") {
		cfg.Languages.Variants = DefaultConfig().Languages.Variants
	}
	cfg.Search.Dialog.Opacity = clampOpacity(cfg.Search.Dialog.Opacity)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("search.show_unavailable", d.Search.ShowUnavailable)
	v.SetDefault("search.dialog.x", d.Search.Dialog.X)
	v.SetDefault("search.dialog.y", d.Search.Dialog.Y)
	v.SetDefault("search.dialog.width", d.Search.Dialog.Width)
	v.SetDefault("search.dialog.height", d.Search.Dialog.Height)
	v.SetDefault("search.dialog.opacity", d.Search.Dialog.Opacity)
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("history.size", d.History.Size)
	v.SetDefault("languages.iso_codes_dir", d.Languages.ISOCodesDir)
	v.SetDefault("languages.ambient", d.Languages.Ambient)
	v.SetDefault("languages.translations", d.Languages.Translations)
	v.SetDefault("catalog.path", d.Catalog.Path)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			ShowUnavailable: false,
			Dialog: DialogGeometry{
				X:       -1,
				Y:       -1,
				Width:   -1,
				Height:  -1,
				Opacity: MaxOpacity,
			},
		},
		History: HistorySettings{
			Size: 100,
		},
		Languages: LanguageSettings{
			Ambient: "en",
			Variants: map[string][]string{
				"zh": {"zh_CN", "zh_TW", "zh_HK"},
			},
		},
	}
}
