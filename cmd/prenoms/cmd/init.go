package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize prenoms configuration",
	Long: `Initialize prenoms configuration files in your config directory.

This creates editable copies of the built-in tables and the settings:
  - names.yaml     (first names → meaning, origin, gender, description)
  - quotes.yaml    (quote categories)
  - settings.yaml  (favorites file, recent window, log level, daily interval)

Edit the tables to add your own names and quotes.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	out := cmd.OutOrStdout()

	// Check if config already exists
	if _, err := os.Stat(filepath.Join(configDir, config.NamesFile)); err == nil && !force {
		return fmt.Errorf("configuration already exists in %s\nUse --force to overwrite", configDir)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initializing prenoms configuration in %s\n\n", configDir)

	files := []struct {
		name  string
		write func(string) error
	}{
		{config.NamesFile, func(p string) error { return config.SaveNames(p, catalog.Names()) }},
		{config.QuotesFile, func(p string) error { return config.SaveQuotes(p, catalog.Quotes()) }},
		{config.SettingsFile, func(p string) error { return config.SaveSettings(p, config.DefaultSettings()) }},
	}
	for _, f := range files {
		if err := f.write(filepath.Join(configDir, f.name)); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Created %s\n", f.name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit names.yaml and quotes.yaml to add your own names and quotes")
	fmt.Fprintln(out, "  2. Run 'prenoms meaning <name>' to look up a name")
	fmt.Fprintln(out, "  3. Run 'prenoms' to open the interactive interface")

	return nil
}
