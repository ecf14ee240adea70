// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard adapts github.com/atotto/clipboard to core.Clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/toeirei/impassword/internal/core"
)

// ErrUnsupported is returned when no clipboard utility is available, e.g. on
// a headless Linux box without xclip, xsel or wl-clipboard.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// System writes to the OS clipboard.
type System struct{}

// New returns the system clipboard adapter.
func New() System { return System{} }

// available reports whether a clipboard backend was found.
func (System) available() bool { return !clipboard.Unsupported }

// WriteAll implements core.Clipboard.
func (s System) WriteAll(text string) error {
	if !s.available() {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

var _ core.Clipboard = System{}
