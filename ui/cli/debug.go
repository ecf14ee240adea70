// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/impassword/internal/config"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/logging"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and locales",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- IMPASSWORD DEBUG ---")

			if path, err := config.GetConfigPath(false); err == nil {
				fmt.Fprintf(out, "User config path: %s\n", path)
			}

			b, err := json.MarshalIndent(appConfig, "", "  ")
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				fmt.Fprintln(out, "-- effective config --")
				fmt.Fprintln(out, string(b))
			}

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (IMPASSWORD*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "IMPASSWORD") {
					fmt.Fprintln(out, e)
				}
			}

			fmt.Fprintln(out, "-- locales --")
			locales := i18n.GetAvailableLocales()
			for _, code := range slices.Sorted(maps.Keys(locales)) {
				fmt.Fprintf(out, "%s = %s\n", code, locales[code])
			}
			fmt.Fprintf(out, "active: %s\n", i18n.GetLang())
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
