// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Impassword.
//
// Usage:
//
//	go run . [flags]
//	./impassword [flags]
//
// This launches the Impassword CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/impassword/ui/cli"
)

// main is the entrypoint for the Impassword CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("impassword: %v", err)
		os.Exit(1)
	}
}
