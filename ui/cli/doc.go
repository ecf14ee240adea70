// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Impassword using Cobra.
// It wires configuration, i18n and logging, and provides commands that delegate
// to the `core` session and the generator. CLI code should remain thin.
package cli
