package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage saved favorites",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a card for a name",
	Long: `Produce a quote or meaning card for a name and save it to the favorites.
A name can only be saved once.

Examples:
  prenoms favorites add Lina
  prenoms favorites add Lina --mode meaning`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFavoritesAdd,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesClear,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)

	favoritesListCmd.Flags().Bool("all", false, fmt.Sprintf("list every favorite instead of the last %d", favorites.DisplayLimit))

	favoritesAddCmd.Flags().String("mode", string(prenoms.ModeCitation), "card mode: citation or meaning")
	favoritesAddCmd.Flags().StringP("category", "c", "", "quote category for citation cards")
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	return withSession(cmd, func(sess *session.Session) error {
		out := cmd.OutOrStdout()
		store := sess.Favorites()

		n := favorites.DisplayLimit
		if all {
			n = store.Len()
		}
		items := store.Latest(n)
		if len(items) == 0 {
			fmt.Fprintln(out, format.NothingSaved)
			return nil
		}

		fmt.Fprintf(out, "⭐ Mes Favoris (%d)\n\n", store.Len())
		for _, it := range items {
			fmt.Fprintf(out, "✨ %s (%s)\n", it.Name, it.Mode)
			fmt.Fprintf(out, "    %s\n", format.Preview(it.Content, format.PreviewWidth))
		}
		return nil
	})
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	category, _ := cmd.Flags().GetString("category")

	mode, err := prenoms.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	return withSession(cmd, func(sess *session.Session) error {
		out := cmd.OutOrStdout()

		if _, err := runCard(sess, strings.Join(args, " "), mode, category); err != nil {
			return emptyNameError(err)
		}

		err := sess.SaveFavorite()
		switch {
		case errors.Is(err, favorites.ErrAlreadyExists):
			fmt.Fprintln(out, format.AlreadySaved)
			return nil
		case err != nil:
			return err
		}

		fmt.Fprintln(out, sess.Current().Content)
		fmt.Fprintln(out)
		fmt.Fprintln(out, format.Added)
		return nil
	})
}

func runFavoritesClear(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		sess.Favorites().Clear()
		fmt.Fprintln(cmd.OutOrStdout(), format.Cleared)
		return nil
	})
}
