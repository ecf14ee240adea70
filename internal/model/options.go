// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain value types shared by the generator, the
// scorer and the user interfaces.
package model

import "fmt"

// Category identifies one of the four character classes a password can draw from.
type Category int

const (
	Uppercase Category = iota
	Lowercase
	Numbers
	Symbols
)

// Categories lists every category in generation order.
var Categories = []Category{Uppercase, Lowercase, Numbers, Symbols}

// String returns the lowercase category name used in flags and config keys.
func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Options configures a single generation call. It is a value type; callers
// own it and the core never mutates it.
//
// Length is expected to be within 8..64 when it comes from a user interface,
// but the core accepts any integer.
type Options struct {
	Length           int  `yaml:"length" mapstructure:"length"`
	IncludeUppercase bool `yaml:"uppercase" mapstructure:"uppercase"`
	IncludeLowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
	IncludeNumbers   bool `yaml:"numbers" mapstructure:"numbers"`
	IncludeSymbols   bool `yaml:"symbols" mapstructure:"symbols"`
	ExcludeAmbiguous bool `yaml:"exclude_ambiguous" mapstructure:"exclude_ambiguous"`
}

// Includes reports whether category c is enabled.
func (o Options) Includes(c Category) bool {
	switch c {
	case Uppercase:
		return o.IncludeUppercase
	case Lowercase:
		return o.IncludeLowercase
	case Numbers:
		return o.IncludeNumbers
	case Symbols:
		return o.IncludeSymbols
	}
	return false
}

// With returns a copy of o with category c set to enabled.
func (o Options) With(c Category, enabled bool) Options {
	switch c {
	case Uppercase:
		o.IncludeUppercase = enabled
	case Lowercase:
		o.IncludeLowercase = enabled
	case Numbers:
		o.IncludeNumbers = enabled
	case Symbols:
		o.IncludeSymbols = enabled
	}
	return o
}

// EnabledCount returns how many include flags are set (0..4).
func (o Options) EnabledCount() int {
	n := 0
	for _, c := range Categories {
		if o.Includes(c) {
			n++
		}
	}
	return n
}
