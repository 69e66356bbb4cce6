package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/spf13/cobra"
)

var meaningCmd = &cobra.Command{
	Use:   "meaning <name>",
	Short: "Show the meaning of a first name",
	Long: `Show the meaning, origin, gender and description of a first name.

Case and surrounding spaces are ignored. A misspelled name is matched to the
closest known one; an unknown name lists a few names to try instead.

Examples:
  prenoms meaning Fatima
  prenoms meaning mohamed`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMeaning,
}

var quoteCmd = &cobra.Command{
	Use:   "quote [name]",
	Short: "Show an inspiring quote for a first name",
	Long: `Show a quote addressed to a first name. Without a name, a random name
from the table is used.

Examples:
  prenoms quote Rose
  prenoms quote Rose --category Amour
  prenoms quote --list-categories`,
	Args: cobra.ArbitraryArgs,
	RunE: runQuote,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random name from the table",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the quote of the day",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(meaningCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(dailyCmd)

	quoteCmd.Flags().StringP("category", "c", "", "quote category (default: every category)")
	quoteCmd.Flags().Bool("list-categories", false, "list the quote categories and exit")
}

func runMeaning(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		r, err := sess.Meaning(strings.Join(args, " "))
		if err != nil {
			return emptyNameError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Content)
		return nil
	})
}

func runQuote(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list-categories")
	category, _ := cmd.Flags().GetString("category")

	return withSession(cmd, func(sess *session.Session) error {
		out := cmd.OutOrStdout()
		if list {
			for _, c := range sess.Quotes().Categories() {
				pool, _ := sess.Quotes().Pool(c)
				fmt.Fprintf(out, "%-12s %d\n", c, len(pool))
			}
			return nil
		}

		name := strings.Join(args, " ")
		if name == "" {
			name = sess.RandomName()
		}
		r, err := sess.Quote(name, category)
		if err != nil {
			return emptyNameError(err)
		}
		fmt.Fprintln(out, r.Content)
		return nil
	})
}

func runRandom(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		fmt.Fprintln(cmd.OutOrStdout(), sess.RandomName())
		return nil
	})
}

func runDaily(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		fmt.Fprintf(cmd.OutOrStdout(), "🌅 %s\n\n💬 %s\n", format.DailyTitle, sess.Daily())
		return nil
	})
}

// runCard produces a card for name in mode, as the TUI would.
func runCard(sess *session.Session, name string, mode prenoms.Mode, category string) (*session.Result, error) {
	if mode == prenoms.ModeMeaning {
		return sess.Meaning(name)
	}
	return sess.Quote(name, category)
}

func emptyNameError(err error) error {
	if errors.Is(err, session.ErrEmptyName) {
		return errors.New(format.EmptyInput)
	}
	return err
}
