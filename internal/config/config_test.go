package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadTables_Defaults(t *testing.T) {
	tables, err := LoadTables(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, catalog.Names(), tables.Names)
	assert.Equal(t, catalog.Quotes(), tables.Quotes)
	assert.Empty(t, tables.Sources)
}

func TestLoadTables_Overrides(t *testing.T) {
	dir := t.TempDir()

	names := map[string]prenoms.NameRecord{
		"Noémie": {Meaning: "Douceur", Origin: "Hébraïque", Gender: prenoms.Feminine, Description: "Prénom doux."},
	}
	categories := []quotes.Category{{Name: "Courage", Quotes: []string{"Osez."}}}
	require.NoError(t, SaveNames(filepath.Join(dir, NamesFile), names))
	require.NoError(t, SaveQuotes(filepath.Join(dir, QuotesFile), categories))

	tables, err := LoadTables(dir)
	require.NoError(t, err)

	assert.Equal(t, names, tables.Names)
	assert.Equal(t, categories, tables.Quotes)
	assert.Len(t, tables.Sources, 2)
}

func TestLoadTables_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, NamesFile), []byte("names: [unclosed"), 0644))

	_, err := LoadTables(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NamesFile)
}

func TestLoadNames_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"lower case key", "names:\n  rose: {meaning: Fleur, gender: f}\n", `should be written "Rose"`},
		{"missing gender", "names:\n  Rose: {meaning: Fleur}\n", "no gender"},
		{"bad gender", "names:\n  Rose: {meaning: Fleur, gender: x}\n", "unknown gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), NamesFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadNames(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadQuotes_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"reserved all", "categories:\n  - name: all\n    quotes: [x]\n", "reserved"},
		{"reserved label", "categories:\n  - name: Toutes\n    quotes: [x]\n", "reserved"},
		{"no name", "categories:\n  - quotes: [x]\n", "without a name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), QuotesFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadQuotes(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	s := DefaultSettings()
	s.DailyInterval = 90 * time.Minute
	require.NoError(t, SaveSettings(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "1h30m0s", got["daily_interval"])
	assert.Equal(t, quotes.DefaultRecentLimit, got["recent_limit"])
	assert.Equal(t, "warn", got["log_level"])
	assert.NotContains(t, got, "favorites_file")
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureConfigDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
