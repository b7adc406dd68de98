package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Settings holds the dashboard's display preferences. Projection
// parameters are fixed defaults and are not read from here.
type Settings struct {
	General GeneralSettings `toml:"general"`
	Display DisplaySettings `toml:"display"`
}

// GeneralSettings selects the dataset and default output format.
type GeneralSettings struct {
	DataFile string `toml:"data_file,omitempty" env:"ECOMET_DATA_FILE"`
	Format   string `toml:"format" env:"ECOMET_FORMAT"`
}

// DisplaySettings controls number formatting and colors.
type DisplaySettings struct {
	Locale string `toml:"locale" env:"ECOMET_LOCALE"`
	Theme  string `toml:"theme" env:"ECOMET_THEME"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{Format: "console"},
		Display: DisplaySettings{Locale: "en-US", Theme: "ecomet-dark"},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecomet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ecomet")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file at path (SettingsPath when empty),
// falling back to defaults if it does not exist, then applies environment
// overrides.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		path = SettingsPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading settings: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveSettings writes settings as TOML, creating the directory if needed.
func SaveSettings(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks that the locale is a well-formed BCP 47 tag.
func (s Settings) Validate() error {
	if _, err := language.Parse(s.Display.Locale); err != nil {
		return fmt.Errorf("display.locale %q: %w", s.Display.Locale, err)
	}
	return nil
}

// Language returns the display locale, or American English if it is invalid.
func (s Settings) Language() language.Tag {
	tag, err := language.Parse(s.Display.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
