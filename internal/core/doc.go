// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core ties the generator and the scorer into the pipeline the user
// interfaces drive: every option change regenerates the password and rates
// it. Side effects (notifications, clipboard) go through small interfaces so
// the TUI, the CLI and tests can plug in their own implementations.
package core
