package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/prenoms/internal/clipboard"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/spf13/cobra"
)

// clipboardWrite is replaced in tests.
var clipboardWrite clipboard.Writer = clipboard.System

var (
	shareMode     string
	shareCategory string
	sharePrint    bool
)

var shareCmd = &cobra.Command{
	Use:   "share <name>",
	Short: "Copy a card to the clipboard",
	Long: `Produce a quote or meaning card for a name and copy it to the clipboard,
ready to paste in a message. With --print, or when no clipboard is
available, the card is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.Flags().StringVar(&shareMode, "mode", string(prenoms.ModeCitation), "card mode: citation or meaning")
	shareCmd.Flags().StringVarP(&shareCategory, "category", "c", "", "quote category for citation cards")
	shareCmd.Flags().BoolVarP(&sharePrint, "print", "p", false, "print the card instead of copying it")
}

func runShare(cmd *cobra.Command, args []string) error {
	mode, err := prenoms.ParseMode(shareMode)
	if err != nil {
		return err
	}

	return withSession(cmd, func(sess *session.Session) error {
		out := cmd.OutOrStdout()

		if _, err := runCard(sess, strings.Join(args, " "), mode, shareCategory); err != nil {
			return emptyNameError(err)
		}
		text, err := sess.ShareText()
		if err != nil {
			return errors.New(format.NoShare)
		}

		if sharePrint {
			fmt.Fprintln(out, text)
			return nil
		}
		if err := clipboardWrite(text); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
			fmt.Fprintln(out, text)
			return nil
		}

		fmt.Fprintln(out, text)
		fmt.Fprintln(out)
		fmt.Fprintln(out, format.Copied)
		return nil
	})
}
