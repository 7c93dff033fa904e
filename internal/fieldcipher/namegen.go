// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package fieldcipher

import "math/rand/v2"

const (
	aliasAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	aliasMinLen   = 6
	aliasMaxLen   = 13
)

// NameGenerator produces random alias strings that replace original field
// names inside an envelope, and names the decoy fields. Aliases are 6 to 13
// characters drawn uniformly from the 52-letter upper/lowercase alphabet.
//
// A generator built with a nil source draws from the process-wide
// math/rand/v2 source, which is safe for concurrent use. A generator built
// with an explicit (typically seeded) source is deterministic and must not be
// shared across concurrent encodes.
//
// Uniqueness is NOT checked: two siblings may in principle receive the same
// alias, or an alias may collide with a reserved envelope key. At these
// lengths the probability is negligible, but it is a known theoretical
// weakness of the format.
type NameGenerator struct {
	rnd *rand.Rand
}

// NewNameGenerator constructs a generator over src. A nil src selects the
// shared process-wide randomness source.
func NewNameGenerator(src rand.Source) *NameGenerator {
	if src == nil {
		return &NameGenerator{}
	}
	return &NameGenerator{rnd: rand.New(src)}
}

// Generate returns one fresh alias.
func (g *NameGenerator) Generate() string {
	n := aliasMinLen + g.intN(aliasMaxLen-aliasMinLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = aliasAlphabet[g.intN(len(aliasAlphabet))]
	}
	return string(b)
}

func (g *NameGenerator) intN(n int) int {
	if g.rnd != nil {
		return g.rnd.IntN(n)
	}
	return rand.IntN(n)
}
