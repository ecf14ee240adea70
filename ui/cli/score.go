// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/strength"
)

func newScoreCmd() *cobra.Command {
	var raw bool
	var minLevel string
	cmd := &cobra.Command{
		Use:   "score PASSWORD",
		Short: "Rate a password against generation options",
		Long: `Prints the strength rating the generator would show for PASSWORD.
The rating depends on the options (--length, --upper, --lower, --numbers,
--symbols). Without --length the password's own length is used.
With --min the command fails when the rating is below the given level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]
			var threshold strength.Level
			if minLevel != "" {
				l, err := strength.ParseLevel(minLevel)
				if err != nil {
					return err
				}
				threshold = l
			}

			opts := optionsFromConfig()
			if !cmd.Flags().Changed("length") {
				opts.Length = len(password)
			}
			level := strength.Score(password, opts)
			label := i18n.T(level.MessageID())
			if raw {
				label = level.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			if level < threshold {
				return errors.New(i18n.T("error.below_min", i18n.T(level.MessageID()), i18n.T(threshold.MessageID())))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the untranslated level name")
	cmd.Flags().StringVar(&minLevel, "min", "", `Fail unless the rating is at least this level, e.g. "strong" or "very_strong"`)
	return cmd
}
