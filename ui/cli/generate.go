// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/impassword/internal/clipboard"
	"github.com/toeirei/impassword/internal/core"
	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/logging"
	"github.com/toeirei/impassword/internal/model"
)

// newClipboard is the clipboard used by --copy. Tests replace it.
var newClipboard = func() core.Clipboard { return clipboard.New() }

// localizedError carries a translated message while keeping the cause for errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

// addOptionFlags registers the generation option flags. Their values reach
// the config through flagAliases, so unset flags keep the configured value.
func addOptionFlags(fs *pflag.FlagSet) {
	d := core.DefaultOptions()
	fs.IntP("length", "l", d.Length, fmt.Sprintf("Password length (%d-%d)", core.MinLength, core.MaxLength))
	fs.Bool("upper", d.IncludeUppercase, "Include uppercase letters (A-Z)")
	fs.Bool("lower", d.IncludeLowercase, "Include lowercase letters (a-z)")
	fs.Bool("numbers", d.IncludeNumbers, "Include digits (0-9)")
	fs.Bool("symbols", d.IncludeSymbols, "Include symbols (!@#$%...)")
	fs.Bool("exclude-ambiguous", d.ExcludeAmbiguous, "Exclude look-alike characters (I, l, 1, O, 0, |)")
	fs.Uint64("seed", 0, "Use a deterministic random source with this seed (not for real secrets)")
}

type generateFlags struct {
	count        int
	showStrength bool
	copy         bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generates passwords with the configured options and prints one per line.
Options come from the config file, IMPASSWORD_DEFAULTS_* environment
variables and the flags below, in increasing precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVarP(&f.showStrength, "strength", "s", false, "Print the strength rating next to each password")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "Copy the last password to the clipboard")
	return cmd
}

// cliNotifier reports session notifications on stderr. Errors are returned
// from RunE as well, so they are only logged at debug level here.
type cliNotifier struct {
	w io.Writer
}

func (n cliNotifier) Success(msg string) { fmt.Fprintln(n.w, msg) }
func (n cliNotifier) Error(msg string)   { logging.Debugf("notification: %s", msg) }

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	opts := appConfig.Options()
	if err := validateLength(opts.Length); err != nil {
		return err
	}
	if f.count < 1 {
		return errors.New(i18n.T("error.count_positive", f.count))
	}

	rng, err := sourceFromConfig()
	if err != nil {
		return err
	}

	var clip core.Clipboard
	if f.copy {
		clip = newClipboard()
	}
	session := core.NewSession(opts, rng, cliNotifier{w: cmd.ErrOrStderr()}, clip)

	out := cmd.OutOrStdout()
	for i := 0; i < f.count; i++ {
		st := session.Snapshot()
		if i > 0 {
			st = session.Regenerate()
		}
		if st.Err != nil {
			return generationError(st.Err)
		}
		if f.showStrength {
			fmt.Fprintf(out, "%s\t%s\n", st.Password, i18n.T(st.Strength.MessageID()))
		} else {
			fmt.Fprintln(out, st.Password)
		}
	}

	if f.copy {
		if err := session.Copy(); err != nil {
			return &localizedError{msg: i18n.T("error.copy_failed"), err: err}
		}
	}
	return nil
}

// validateLength enforces the range offered to users. The generator itself
// accepts any length.
func validateLength(n int) error {
	if n < core.MinLength || n > core.MaxLength {
		return errors.New(i18n.T("error.length_range", core.MinLength, core.MaxLength, n))
	}
	return nil
}

func generationError(err error) error {
	if errors.Is(err, generator.ErrNoCharactersAvailable) {
		return &localizedError{msg: i18n.T("error.no_characters"), err: err}
	}
	return err
}

// optionsFromConfig is the options value used by subcommands.
func optionsFromConfig() model.Options {
	return appConfig.Options()
}
