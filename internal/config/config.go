// Package config handles the optional table files and settings of prenoms.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	NamesFile     = "names.yaml"
	NamesJSONL    = "names.jsonl"
	QuotesFile    = "quotes.yaml"
	SettingsFile  = "settings.yaml"
	FavoritesFile = "favorites.json"
	LogFile       = "prenoms.log"
)

// Settings are the user-tunable knobs, read through viper.
type Settings struct {
	FavoritesFile string        `yaml:"favorites_file" mapstructure:"favorites_file"`
	RecentLimit   int           `yaml:"recent_limit" mapstructure:"recent_limit"`
	LogLevel      string        `yaml:"log_level" mapstructure:"log_level"`
	DailyInterval time.Duration `yaml:"daily_interval" mapstructure:"daily_interval"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		RecentLimit:   quotes.DefaultRecentLimit,
		LogLevel:      "warn",
		DailyInterval: 24 * time.Hour,
	}
}

// Tables are the name and quote tables in effect.
type Tables struct {
	Names   map[string]prenoms.NameRecord
	Quotes  []quotes.Category
	Sources []string // files that replaced a built-in table
}

// LoadTables returns the built-in tables, each replaced by its YAML file
// in dir when that file exists.
func LoadTables(dir string) (*Tables, error) {
	t := &Tables{
		Names:  catalog.Names(),
		Quotes: catalog.Quotes(),
	}

	namesPath := filepath.Join(dir, NamesFile)
	if n, err := LoadNames(namesPath); err == nil {
		t.Names = n
		t.Sources = append(t.Sources, namesPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	quotesPath := filepath.Join(dir, QuotesFile)
	if q, err := LoadQuotes(quotesPath); err == nil {
		t.Quotes = q
		t.Sources = append(t.Sources, quotesPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return t, nil
}

// LoadNames loads a name table from a YAML file.
func LoadNames(path string) (map[string]prenoms.NameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading names file: %w", err)
	}

	var file struct {
		Names map[string]prenoms.NameRecord `yaml:"names"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing names file %s: %w", path, err)
	}

	for name, rec := range file.Names {
		if prenoms.Canonical(name) != name {
			return nil, fmt.Errorf("names file %s: key %q should be written %q", path, name, prenoms.Canonical(name))
		}
		if rec.Gender == "" {
			return nil, fmt.Errorf("names file %s: %s has no gender", path, name)
		}
	}

	return file.Names, nil
}

// LoadQuotes loads quote categories from a YAML file.
func LoadQuotes(path string) ([]quotes.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quotes file: %w", err)
	}

	var file struct {
		Categories []quotes.Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing quotes file %s: %w", path, err)
	}

	for _, c := range file.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("quotes file %s: category without a name", path)
		}
		if quotes.IsAll(c.Name) {
			return nil, fmt.Errorf("quotes file %s: %q is reserved", path, c.Name)
		}
	}

	return file.Categories, nil
}

// SaveNames saves a name table to a YAML file.
func SaveNames(path string, names map[string]prenoms.NameRecord) error {
	data := struct {
		Names map[string]prenoms.NameRecord `yaml:"names"`
	}{Names: names}

	return writeYAML(path, namesHeader, &data)
}

// SaveQuotes saves quote categories to a YAML file.
func SaveQuotes(path string, categories []quotes.Category) error {
	data := struct {
		Categories []quotes.Category `yaml:"categories"`
	}{Categories: categories}

	return writeYAML(path, quotesHeader, &data)
}

// SaveSettings saves settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	data := struct {
		FavoritesFile string `yaml:"favorites_file,omitempty"`
		RecentLimit   int    `yaml:"recent_limit"`
		LogLevel      string `yaml:"log_level"`
		DailyInterval string `yaml:"daily_interval"`
	}{
		FavoritesFile: s.FavoritesFile,
		RecentLimit:   s.RecentLimit,
		LogLevel:      s.LogLevel,
		DailyInterval: s.DailyInterval.String(),
	}

	return writeYAML(path, settingsHeader, &data)
}

func writeYAML(path, header string, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, append([]byte(header), out...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return nil
}

const namesHeader = `# prenoms - name table
# Keys are written with a capital first letter and the rest in lower case.
# gender: Masculin or Féminin

`

const quotesHeader = `# prenoms - quote categories
# "all" and "Toutes" are reserved for the pool of every quote.

`

const settingsHeader = `# prenoms - settings
# Every key can also be set with a PRENOMS_ environment variable.

`

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "prenoms"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
