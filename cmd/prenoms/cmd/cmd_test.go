package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/clipboard"
	"github.com/f3rmion/prenoms/internal/config"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a private config directory.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		resetFlags(rootCmd)
		viper.Reset()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func stubClipboard(t *testing.T, w clipboard.Writer) {
	t.Helper()
	orig := clipboardWrite
	clipboardWrite = w
	t.Cleanup(func() { clipboardWrite = orig })
}

func TestMeaning(t *testing.T) {
	out, err := run(t, t.TempDir(), "meaning", "  MOHAMMED ")
	require.NoError(t, err)

	assert.Contains(t, out, "✨ Mohammed ✨")
	assert.Contains(t, out, "Loué, digne de louanges")
	assert.Contains(t, out, "Arabe")
}

func TestMeaning_Fuzzy(t *testing.T) {
	out, err := run(t, t.TempDir(), "meaning", "mohamed")
	require.NoError(t, err)
	assert.Contains(t, out, "Loué, digne de louanges")
}

func TestMeaning_NotFound(t *testing.T) {
	out, err := run(t, t.TempDir(), "meaning", "xyzzy")
	require.NoError(t, err)

	assert.Contains(t, out, "'xyzzy'")
	assert.Contains(t, out, "💡 Essayez : ")
}

func TestMeaning_EmptyName(t *testing.T) {
	_, err := run(t, t.TempDir(), "meaning", "   ")
	require.Error(t, err)
	assert.Equal(t, format.EmptyInput, err.Error())
}

func TestQuote(t *testing.T) {
	out, err := run(t, t.TempDir(), "quote", "rose", "-c", "Amour")
	require.NoError(t, err)

	assert.Contains(t, out, "✨ Rose ✨")
	assert.Contains(t, out, "🎯 Catégorie : Amour")
}

func TestQuote_ListCategories(t *testing.T) {
	out, err := run(t, t.TempDir(), "quote", "--list-categories")
	require.NoError(t, err)

	for _, c := range catalog.Quotes() {
		assert.Contains(t, out, c.Name)
	}
}

func TestRandom(t *testing.T) {
	out, err := run(t, t.TempDir(), "random")
	require.NoError(t, err)

	assert.Contains(t, catalog.Names(), strings.TrimSpace(out))
}

func TestDaily(t *testing.T) {
	out, err := run(t, t.TempDir(), "daily")
	require.NoError(t, err)
	assert.Contains(t, out, format.DailyTitle)
}

func TestFavorites(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, format.NothingSaved)

	out, err = run(t, dir, "favorites", "add", "rose")
	require.NoError(t, err)
	assert.Contains(t, out, format.Added)

	out, err = run(t, dir, "favorites", "add", "Lina", "--mode", "meaning")
	require.NoError(t, err)
	assert.Contains(t, out, format.Added)

	out, err = run(t, dir, "favorites", "add", "ROSE", "--mode", "meaning")
	require.NoError(t, err)
	assert.Contains(t, out, format.AlreadySaved)

	out, err = run(t, dir, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "⭐ Mes Favoris (2)")
	assert.Contains(t, out, "✨ Rose (citation)")
	assert.Contains(t, out, "✨ Lina (meaning)")
	assert.Less(t, strings.Index(out, "Lina"), strings.Index(out, "Rose"), "newest first")

	_, err = os.Stat(filepath.Join(dir, config.FavoritesFile))
	require.NoError(t, err)

	out, err = run(t, dir, "favorites", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, format.Cleared)

	out, err = run(t, dir, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, format.NothingSaved)
}

func TestFavorites_BadMode(t *testing.T) {
	_, err := run(t, t.TempDir(), "favorites", "add", "Rose", "--mode", "poem")
	assert.Error(t, err)
}

func TestFavorites_FileFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elsewhere", "mine.json")

	_, err := run(t, dir, "--favorites", path, "favorites", "add", "Nour")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Nour"`)
}

func TestShare(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	out, err := run(t, t.TempDir(), "share", "fatima", "--mode", "meaning")
	require.NoError(t, err)

	assert.Contains(t, out, format.Copied)
	assert.True(t, strings.HasPrefix(copied, "✨ Fatima ✨"))
}

func TestShare_Print(t *testing.T) {
	stubClipboard(t, func(string) error {
		t.Error("clipboard used with --print")
		return nil
	})

	out, err := run(t, t.TempDir(), "share", "Rose", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "✨ Rose ✨")
	assert.NotContains(t, out, format.Copied)
}

func TestExportAnki(t *testing.T) {
	dir := t.TempDir()
	apkg := filepath.Join(dir, "out.apkg")

	out, err := run(t, dir, "export", "anki", apkg)
	require.NoError(t, err)
	assert.Contains(t, out, format.NothingSaved)

	_, err = run(t, dir, "favorites", "add", "Adam")
	require.NoError(t, err)

	out, err = run(t, dir, "export", "anki", apkg)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 favorites")

	info, err := os.Stat(apkg)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prenoms")

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized!")

	for _, f := range []string{config.NamesFile, config.QuotesFile, config.SettingsFile} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}

	_, err = run(t, dir, "init")
	assert.Error(t, err)

	_, err = run(t, dir, "init", "--force")
	require.NoError(t, err)

	// The written tables load back as the active ones.
	out, err = run(t, dir, "meaning", "Mohammed")
	require.NoError(t, err)
	assert.Contains(t, out, "Loué, digne de louanges")
}

func TestCustomNameTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.NamesJSONL),
		[]byte(`{"name":"noémie","meaning":"Douceur","origin":"Hébraïque","gender":"f","description":"Prénom doux."}`+"\n"), 0644))

	out, err := run(t, dir, "meaning", "Noémie")
	require.NoError(t, err)
	assert.Contains(t, out, "📖 Signification : Douceur")
}

func TestSettingsDoNotLeakBetweenRuns(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "mine.json")

	t.Run("configured", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile),
			[]byte("favorites_file: "+custom+"\n"), 0644))

		_, err := run(t, dir, "favorites", "add", "Rose", "--mode", "meaning")
		require.NoError(t, err)
		assert.FileExists(t, custom)
	})

	t.Run("fresh", func(t *testing.T) {
		out, err := run(t, t.TempDir(), "favorites", "list")
		require.NoError(t, err)
		assert.Contains(t, out, format.NothingSaved)
	})
}

func TestVerboseLogsFavoritesPath(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "--verbose", "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "loaded favorites")
	assert.Contains(t, out, filepath.Join(dir, config.FavoritesFile))
}
