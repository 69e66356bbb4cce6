package cmd

import (
	"fmt"

	"github.com/f3rmion/prenoms/internal/anki"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/spf13/cobra"
)

var exportDeckName string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export favorites",
}

var exportAnkiCmd = &cobra.Command{
	Use:   "anki <out.apkg>",
	Short: "Export favorites as an Anki deck",
	Long: `Write every favorite as a note of a new Anki deck (.apkg). The name is on
the front of the card and the saved card on the back; each note is tagged
with its mode.

Example:
  prenoms export anki prenoms.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runExportAnki,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportAnkiCmd)

	exportAnkiCmd.Flags().StringVar(&exportDeckName, "deck", "Prénoms", "deck name")
}

func runExportAnki(cmd *cobra.Command, args []string) error {
	path := args[0]

	return withSession(cmd, func(sess *session.Session) error {
		out := cmd.OutOrStdout()

		items := sess.Favorites().List()
		if len(items) == 0 {
			fmt.Fprintln(out, format.NothingSaved)
			return nil
		}

		deck := anki.NewDeck(exportDeckName)
		deck.AddFavorites(items)
		if err := deck.SaveAs(path); err != nil {
			return fmt.Errorf("exporting deck: %w", err)
		}

		fmt.Fprintf(out, "Exported %d favorites to %s\n", len(deck.Cards), path)
		return nil
	})
}
