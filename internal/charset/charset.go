// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charset builds the character sets the generator samples from.
package charset

import (
	"strings"

	"github.com/toeirei/impassword/internal/model"
)

// Base character sets.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Numbers   = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Ambiguous holds the visually confusable characters removed from the
// letter and digit sets when requested. Symbols are never filtered, so '|'
// stays available there.
const Ambiguous = "Il1O0|"

// Effective is the set of characters per category after filtering.
type Effective struct {
	Uppercase string
	Lowercase string
	Numbers   string
	Symbols   string
}

// Category returns the characters of category c.
func (e Effective) Category(c model.Category) string {
	switch c {
	case model.Uppercase:
		return e.Uppercase
	case model.Lowercase:
		return e.Lowercase
	case model.Numbers:
		return e.Numbers
	case model.Symbols:
		return e.Symbols
	}
	return ""
}

// Base returns the unfiltered character sets.
func Base() Effective {
	return Effective{
		Uppercase: Uppercase,
		Lowercase: Lowercase,
		Numbers:   Numbers,
		Symbols:   Symbols,
	}
}

// Build derives the effective sets. With excludeAmbiguous the ambiguous
// characters are stripped from uppercase, lowercase and numbers. A category
// may end up empty; that is left for the generator to handle.
func Build(excludeAmbiguous bool) Effective {
	e := Base()
	if !excludeAmbiguous {
		return e
	}
	e.Uppercase = Filter(e.Uppercase)
	e.Lowercase = Filter(e.Lowercase)
	e.Numbers = Filter(e.Numbers)
	return e
}

// Filter removes every ambiguous character from s.
func Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if IsAmbiguous(r) {
			return -1
		}
		return r
	}, s)
}

// IsAmbiguous reports whether r is one of the ambiguous characters.
func IsAmbiguous(r rune) bool {
	return strings.ContainsRune(Ambiguous, r)
}
