// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package generator produces randomized passwords from a set of options.
//
// Every enabled, non-empty category contributes one guaranteed character and
// its whole set to a shared pool. The buffer is filled from the pool up to the
// requested length, shuffled with Fisher-Yates and truncated. When the
// requested length is below the number of qualifying categories the
// truncation can drop guaranteed characters; this is intentional and the
// strength scorer accounts for it.
package generator

import (
	"errors"

	"github.com/toeirei/impassword/internal/charset"
	"github.com/toeirei/impassword/internal/model"
)

// ErrNoCharactersAvailable is returned when no enabled category has any
// characters left to sample from.
var ErrNoCharactersAvailable = errors.New("no characters available: select at least one character type")

// Generate builds a password for opts from the given effective sets.
func Generate(opts model.Options, sets charset.Effective, rng RandomSource) (string, error) {
	var pool []byte
	guaranteed := make([]byte, 0, len(model.Categories))

	for _, c := range model.Categories {
		chars := sets.Category(c)
		if !opts.Includes(c) || chars == "" {
			continue
		}
		pool = append(pool, chars...)
		guaranteed = append(guaranteed, chars[rng.IntN(len(chars))])
	}

	if len(pool) == 0 {
		return "", ErrNoCharactersAvailable
	}

	target := max(opts.Length, len(guaranteed))

	buf := make([]byte, 0, target)
	buf = append(buf, guaranteed...)
	for len(buf) < target {
		buf = append(buf, pool[rng.IntN(len(pool))])
	}

	shuffle(buf, rng)

	// A non-positive length keeps the guaranteed characters.
	if opts.Length > 0 && opts.Length < len(buf) {
		buf = buf[:opts.Length]
	}
	return string(buf), nil
}

// shuffle is a Fisher-Yates shuffle driven by rng.
func shuffle(buf []byte, rng RandomSource) {
	for i := len(buf) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// Generator couples a random source with the character set builder.
type Generator struct {
	rng RandomSource
}

// New returns a Generator drawing from rng. A nil rng selects CryptoSource.
func New(rng RandomSource) *Generator {
	if rng == nil {
		rng = CryptoSource{}
	}
	return &Generator{rng: rng}
}

// Generate builds the effective sets for opts and generates a password.
func (g *Generator) Generate(opts model.Options) (string, error) {
	return Generate(opts, charset.Build(opts.ExcludeAmbiguous), g.rng)
}
