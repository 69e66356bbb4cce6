// Package cmd contains all CLI commands for prenoms.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/prenoms/internal/config"
	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/logging"
	"github.com/f3rmion/prenoms/internal/names"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prenoms",
	Short: "Citations & Significations - quotes and meanings for first names",
	Long: `prenoms gives an inspiring quote or the meaning of a first name.

  - Citations: a quote addressed to the name, from a category of your choice
  - Significations: meaning, origin, gender and description of the name
  - Favoris: save the cards you like and export them to Anki

Running 'prenoms' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/prenoms)")
	rootCmd.PersistentFlags().String("favorites", "", "favorites file (default is <config>/favorites.json)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}

// initConfig reads in the settings file and ENV variables if set.
func initConfig() {
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("favorites_file", rootCmd.PersistentFlags().Lookup("favorites"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	defaults := config.DefaultSettings()
	viper.SetDefault("recent_limit", defaults.RecentLimit)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("daily_interval", defaults.DailyInterval)

	viper.SetEnvPrefix("PRENOMS")
	viper.AutomaticEnv()

	viper.SetConfigFile(filepath.Join(getConfigDir(), config.SettingsFile))
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: reading settings:", err)
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings returns the effective settings.
func loadSettings() (config.Settings, error) {
	s := config.DefaultSettings()
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decoding settings: %w", err)
	}
	if s.FavoritesFile == "" {
		s.FavoritesFile = filepath.Join(getConfigDir(), config.FavoritesFile)
	}
	if viper.GetBool("verbose") && s.LogLevel == config.DefaultSettings().LogLevel {
		s.LogLevel = "info"
	}
	return s, nil
}

// newLogger creates the logger for a command. The TUI owns the terminal,
// so it logs to a file in the config directory instead of stderr.
func newLogger(cmd *cobra.Command, s config.Settings, toFile bool) (*log.Logger, func() error) {
	opts := logging.Options{Level: s.LogLevel, Writer: cmd.ErrOrStderr()}
	if toFile {
		if err := config.EnsureConfigDir(getConfigDir()); err == nil {
			opts.File = filepath.Join(getConfigDir(), config.LogFile)
		}
	}
	return logging.New(opts)
}

// loadSession builds the name dictionary, the quote selector and the
// favorites store from the config directory.
func loadSession(s config.Settings, logger *log.Logger) (*session.Session, error) {
	configDir := getConfigDir()

	tables, err := config.LoadTables(configDir)
	if err != nil {
		return nil, err
	}
	for _, src := range tables.Sources {
		logger.Info("using table", "path", src)
	}

	dict := names.NewDictionary(tables.Names, nil)
	jsonl := filepath.Join(configDir, config.NamesJSONL)
	if _, err := os.Stat(jsonl); err == nil {
		if err := dict.LoadFromFile(jsonl); err != nil {
			return nil, err
		}
		logger.Info("merged name file", "path", jsonl, "names", dict.Size())
	}
	if err := dict.Validate(); err != nil {
		return nil, err
	}

	sel := quotes.NewSelector(tables.Quotes, s.RecentLimit, nil, logger)
	store := favorites.Open(s.FavoritesFile, logger)
	logger.Info("loaded favorites", "path", store.Path(), "count", store.Len())

	return session.New(dict, sel, store), nil
}

// withSession runs fn with a session whose logger writes to stderr.
func withSession(cmd *cobra.Command, fn func(*session.Session) error) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closeLog := newLogger(cmd, s, false)
	defer closeLog()

	sess, err := loadSession(s, logger)
	if err != nil {
		return err
	}
	return fn(sess)
}
