package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/prenoms/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Views:
  1. Citations        a quote for a name, by category
  2. Significations   the meaning of a name
  3. Favoris          saved cards, newest first

Controls:
  Enter    Get a card
  Ctrl+S   Save to favorites
  Ctrl+Y   Copy to clipboard
  Tab      Focus the menu
  Ctrl+C   Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closeLog := newLogger(cmd, s, true)
	defer closeLog()

	sess, err := loadSession(s, logger)
	if err != nil {
		return err
	}
	logger.Info("starting TUI", "names", sess.Names().Size(), "favorites", sess.Favorites().Len())

	p := tea.NewProgram(
		tui.NewApp(sess, clipboardWrite, s.DailyInterval),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
