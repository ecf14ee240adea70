// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// RandomSource yields uniformly distributed integers in [0, n) for n > 0.
type RandomSource interface {
	IntN(n int) int
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use and is
// the default for every user facing surface.
type CryptoSource struct{}

// IntN implements RandomSource.
func (CryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("generator: reading random source: %v", err))
	}
	return int(v.Int64())
}

// SeededSource is a deterministic PCG source. It is not safe for concurrent use.
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible source for the given seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN implements RandomSource.
func (s *SeededSource) IntN(n int) int {
	return s.r.IntN(n)
}

// SequenceSource replays Values in order, reduced modulo n, and starts over
// once exhausted. An empty sequence always yields 0. Used to pin exact
// selection and shuffle outcomes in tests.
type SequenceSource struct {
	Values []int
	pos    int
}

// IntN implements RandomSource.
func (s *SequenceSource) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls returns how many values were consumed so far.
func (s *SequenceSource) Calls() int {
	return s.pos
}
