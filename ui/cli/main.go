// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Impassword using the
// Cobra library. It defines the root command, persistent flags, config
// loading and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/impassword/buildvars"
	"github.com/toeirei/impassword/internal/clipboard"
	"github.com/toeirei/impassword/internal/config"
	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/logging"
	"github.com/toeirei/impassword/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string

var appConfig config.Config

// isTerminal reports whether stdout is an interactive terminal. Tests replace it.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// runTUI starts the interactive interface. Tests replace it.
var runTUI = tui.Run

// flagAliases maps config keys to the flag names that set them.
var flagAliases = map[string]string{
	"language":                   "lang",
	"debug":                      "debug",
	"random.seed":                "seed",
	"defaults.length":            "length",
	"defaults.uppercase":         "upper",
	"defaults.lowercase":         "lower",
	"defaults.numbers":           "numbers",
	"defaults.symbols":           "symbols",
	"defaults.exclude_ambiguous": "exclude-ambiguous",
}

// setupDefaultServices loads the configuration and initializes i18n and
// logging for every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, configPath, flagAliases)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run: persist the built-in defaults, not the flag overrides,
		// so the file is discoverable.
		writeDefaultConfig()
	} else if err != nil {
		i18n.Init(fallbackLanguage(cmd))
		return errors.New(i18n.T("error.config_load", err))
	}

	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Random.Source == "" {
		appConfig.Random.Source = config.SourceCrypto
	}
	// --seed implies the deterministic source.
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		appConfig.Random.Source = config.SourceSeeded
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(appConfig.Debug)
	logging.Debugf("config loaded: language=%s source=%s", appConfig.Language, appConfig.Random.Source)
	return nil
}

func writeDefaultConfig() {
	def, err := config.DefaultConfig()
	if err != nil {
		logging.Warnf("could not build default config: %v", err)
		return
	}
	if err := config.WriteConfigFile(&def, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
		return
	}
	if path, err := config.GetConfigPath(false); err == nil {
		logging.Infof("created default config at %s", path)
	}
}

// fallbackLanguage reads --lang when the config could not be loaded.
func fallbackLanguage(cmd *cobra.Command) string {
	if lang, err := cmd.Flags().GetString("lang"); err == nil && lang != "" {
		return lang
	}
	return "en"
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impassword",
		Short: "Impassword generates strong random passwords.",
		Long: `Impassword builds random passwords from uppercase letters, lowercase
letters, digits and symbols, optionally without look-alike characters,
and rates every result with a strength heuristic.

Running without a subcommand launches the interactive TUI when stdout is
a terminal, and prints a single password otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return runGenerate(cmd, generateFlags{count: 1})
			}
			rng, err := appConfig.Random.NewSource()
			if err != nil {
				return err
			}
			// Log lines would corrupt the alternate screen.
			logging.SetOutput(io.Discard)
			defer logging.SetOutput(os.Stderr)
			return runTUI(appConfig.Options(), rng, clipboard.New())
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/impassword/impassword.yaml)")
	cmd.PersistentFlags().String("lang", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	addOptionFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenerateCmd(),
		newScoreCmd(),
		newDebugCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

const modulePath = "github.com/toeirei/impassword"

// sourceFromConfig returns the configured random source.
func sourceFromConfig() (generator.RandomSource, error) {
	return appConfig.Random.NewSource()
}
